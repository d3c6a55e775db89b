package handler

import (
	"log/slog"
	"net/http"

	"pressroom/internal/delivery/http/middleware"
	"pressroom/internal/delivery/http/response"
	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoryHandler holds dependencies for story submission and moderation handlers.
type StoryHandler struct {
	uc     usecase.StoryUsecase
	logger *slog.Logger
}

// NewStoryHandler is the constructor for StoryHandler, injected by Fx.
func NewStoryHandler(uc usecase.StoryUsecase, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{uc: uc, logger: logger}
}

type submitStoryRequest struct {
	Title          string `json:"title" validate:"required"`
	Content        string `json:"content" validate:"required"`
	SubmitterName  string `json:"submitterName"`
	SubmitterEmail string `json:"submitterEmail" validate:"omitempty,email"`
	Category       string `json:"category" validate:"required"`
}

// Submit accepts a public story submission. Every submission enters the
// moderation queue as pending.
func (h *StoryHandler) Submit(c echo.Context) error {
	var input submitStoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid story input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	story, err := h.uc.Submit(c.Request().Context(), usecase.SubmitStoryInput{
		Title:          input.Title,
		Content:        input.Content,
		SubmitterName:  input.SubmitterName,
		SubmitterEmail: input.SubmitterEmail,
		Category:       input.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPublicStoryResponse(story), "Story submitted successfully")
}

// Get returns one story. Staff see the full record; unauthenticated callers
// only reach published stories, with view counting.
func (h *StoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid story ID")
	}

	if _, ok := middleware.CurrentAdmin(c); !ok {
		story, err := h.uc.GetPublished(c.Request().Context(), id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toPublicStoryResponse(story), "")
	}

	story, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoryResponse(story), "")
}

// List returns a filtered page of stories for moderators.
func (h *StoryHandler) List(c echo.Context) error {
	filter := repository.StoryListFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		From:     queryTime(c, "from"),
		To:       queryTime(c, "to"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.StoryStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown story status")
		}
		filter.Status = &status
	}

	output, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listEnvelope{
		Items: toStoryResponses(output.Stories),
		Total: output.Total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, "")
}

type reviewStoryRequest struct {
	Status          string `json:"status" validate:"required,oneof=pending approved published rejected"`
	RejectionReason string `json:"rejectionReason"`
}

// Review applies a moderation decision. Rejections require a reason.
func (h *StoryHandler) Review(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid story ID")
	}

	var input reviewStoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	story, err := h.uc.Review(c.Request().Context(), admin.ID, id, usecase.ReviewStoryInput{
		Status:          entity.StoryStatus(input.Status),
		RejectionReason: input.RejectionReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoryResponse(story), "Story reviewed successfully")
}

type updateStoryRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

// Update edits a story's content fields. Status changes go through Review.
func (h *StoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid story ID")
	}

	var input updateStoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid story input")
	}

	story, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateStoryInput{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStoryResponse(story), "Story updated successfully")
}

// Delete removes a story.
func (h *StoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid story ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Story deleted successfully")
}
