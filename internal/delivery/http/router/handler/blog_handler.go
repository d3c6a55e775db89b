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

// BlogHandler holds dependencies for blog content handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{uc: uc, logger: logger}
}

type createBlogRequest struct {
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content" validate:"required"`
	Author        string   `json:"author"`
	FeaturedImage string   `json:"featuredImage"`
	Categories    []string `json:"categories"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status" validate:"omitempty,oneof=draft published"`
}

// Create handles the blog creation request.
func (h *BlogHandler) Create(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	var input createBlogRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.Create(c.Request().Context(), admin.ID, usecase.CreateBlogInput{
		Title:         input.Title,
		Content:       input.Content,
		Author:        input.Author,
		FeaturedImage: input.FeaturedImage,
		Categories:    input.Categories,
		Tags:          input.Tags,
		Status:        entity.BlogStatus(input.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBlogResponse(blog), "Blog post created successfully")
}

// Get returns one blog post by ID.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid blog ID")
	}

	blog, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog), "")
}

// GetBySlug serves the public read path by slug. Only published posts are
// visible and each read bumps the view counter.
func (h *BlogHandler) GetBySlug(c echo.Context) error {
	blog, err := h.uc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog), "")
}

// List returns a filtered page of blog posts. Unauthenticated callers only
// see published posts.
func (h *BlogHandler) List(c echo.Context) error {
	filter := repository.BlogListFilter{
		Category: c.QueryParam("category"),
		Tag:      c.QueryParam("tag"),
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.BlogStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown blog status")
		}
		filter.Status = &status
	}

	// Without an authenticated admin only published posts are listed.
	if _, ok := middleware.CurrentAdmin(c); !ok {
		published := entity.BlogStatusPublished
		filter.Status = &published
	}

	output, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listEnvelope{
		Items: toBlogResponses(output.Blogs),
		Total: output.Total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, "")
}

type updateBlogRequest struct {
	Title         *string  `json:"title"`
	Content       *string  `json:"content"`
	Author        *string  `json:"author"`
	FeaturedImage *string  `json:"featuredImage"`
	Categories    []string `json:"categories"`
	Tags          []string `json:"tags"`
	Status        *string  `json:"status" validate:"omitempty,oneof=draft published"`
}

// Update mutates a blog post. A changed title regenerates the slug.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid blog ID")
	}

	var input updateBlogRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	update := usecase.UpdateBlogInput{
		Title:         input.Title,
		Content:       input.Content,
		Author:        input.Author,
		FeaturedImage: input.FeaturedImage,
		Categories:    input.Categories,
		Tags:          input.Tags,
	}
	if input.Status != nil {
		status := entity.BlogStatus(*input.Status)
		update.Status = &status
	}

	blog, err := h.uc.Update(c.Request().Context(), id, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog), "Blog post updated successfully")
}

// Delete removes a blog post.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid blog ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog post deleted successfully")
}
