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

// AdminHandler holds dependencies for admin account management handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type createAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=super_admin blog_manager story_moderator"`
}

// Create registers a new admin account with permissions derived from its role.
func (h *AdminHandler) Create(c echo.Context) error {
	var input createAdminRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.Create(c.Request().Context(), usecase.CreateAdminInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.Role(input.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAdminResponse(admin), "Admin created successfully")
}

// Get returns one admin account.
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin ID")
	}

	admin, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminResponse(admin), "")
}

// List returns a filtered page of admin accounts.
func (h *AdminHandler) List(c echo.Context) error {
	filter := repository.AdminListFilter{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 20),
	}

	if raw := c.QueryParam("role"); raw != "" {
		role := entity.Role(raw)
		if !role.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Unknown role")
		}
		filter.Role = &role
	}

	switch c.QueryParam("isActive") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	}

	output, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listEnvelope{
		Items: toAdminResponses(output.Admins),
		Total: output.Total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, "")
}

type updateAdminRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=super_admin blog_manager story_moderator"`
	IsActive *bool   `json:"isActive"`
}

// Update mutates another admin's account. Targeting one's own account is
// rejected.
func (h *AdminHandler) Update(c echo.Context) error {
	actor, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin ID")
	}

	var input updateAdminRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	update := usecase.UpdateAdminInput{
		Name:     input.Name,
		Email:    input.Email,
		IsActive: input.IsActive,
	}
	if input.Role != nil {
		role := entity.Role(*input.Role)
		update.Role = &role
	}

	admin, err := h.uc.Update(c.Request().Context(), actor.ID, id, update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminResponse(admin), "Admin updated successfully")
}

// Delete removes another admin's account, with the same self-targeting guard.
func (h *AdminHandler) Delete(c echo.Context) error {
	actor, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin ID")
	}

	if err := h.uc.Delete(c.Request().Context(), actor.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin deleted successfully")
}
