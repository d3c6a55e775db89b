package handler

import (
	"log/slog"
	"net/http"

	"pressroom/internal/delivery/http/response"
	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WaitlistHandler holds dependencies for waitlist handlers.
type WaitlistHandler struct {
	uc     usecase.WaitlistUsecase
	logger *slog.Logger
}

// NewWaitlistHandler is the constructor for WaitlistHandler, injected by Fx.
func NewWaitlistHandler(uc usecase.WaitlistUsecase, logger *slog.Logger) *WaitlistHandler {
	return &WaitlistHandler{uc: uc, logger: logger}
}

type waitlistSignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// Signup registers a public waitlist signup, capturing the caller's IP and
// user agent.
func (h *WaitlistHandler) Signup(c echo.Context) error {
	var input waitlistSignupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.Signup(c.Request().Context(), usecase.WaitlistSignupInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWaitlistResponse(entry), "Waitlist signup successful")
}

// Get returns one waitlist entry.
func (h *WaitlistHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid waitlist entry ID")
	}

	entry, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWaitlistResponse(entry), "")
}

// List returns a filtered page of waitlist entries.
func (h *WaitlistHandler) List(c echo.Context) error {
	filter := repository.WaitlistListFilter{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.WaitlistStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown waitlist status")
		}
		filter.Status = &status
	}

	output, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listEnvelope{
		Items: toWaitlistResponses(output.Entries),
		Total: output.Total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, "")
}

type advanceWaitlistRequest struct {
	Status string `json:"status" validate:"required,oneof=pending notified converted"`
}

// AdvanceStatus moves a waitlist entry along its lifecycle. Advancing to
// notified triggers the invitation email.
func (h *WaitlistHandler) AdvanceStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid waitlist entry ID")
	}

	var input advanceWaitlistRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.AdvanceStatus(c.Request().Context(), id, entity.WaitlistStatus(input.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWaitlistResponse(entry), "Waitlist entry updated successfully")
}

// Delete removes a waitlist entry.
func (h *WaitlistHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid waitlist entry ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Waitlist entry deleted successfully")
}
