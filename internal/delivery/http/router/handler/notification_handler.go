package handler

import (
	"log/slog"
	"net/http"

	"pressroom/internal/delivery/http/middleware"
	"pressroom/internal/delivery/http/response"
	"pressroom/internal/domain/repository"
	"pressroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for in-app notification handlers.
// Every operation is scoped to the authenticated admin.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

type notificationListData struct {
	Items  []notificationResponse `json:"items"`
	Total  int64                  `json:"total"`
	Unread int64                  `json:"unread"`
	Page   int                    `json:"page"`
	Limit  int                    `json:"limit"`
}

// List returns the authenticated admin's notifications with the unread badge
// count.
func (h *NotificationHandler) List(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	filter := repository.NotificationListFilter{
		RecipientID: admin.ID,
		UnreadOnly:  c.QueryParam("unread") == "true",
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 20),
	}

	output, err := h.uc.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notificationListData{
		Items:  toNotificationResponses(output.Notifications),
		Total:  output.Total,
		Unread: output.Unread,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, "")
}

// MarkRead marks one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	notification, err := h.uc.MarkRead(c.Request().Context(), admin.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNotificationResponse(notification), "Notification marked as read")
}

// MarkAllRead marks every unread notification of the authenticated admin.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	if err := h.uc.MarkAllRead(c.Request().Context(), admin.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "All notifications marked as read")
}

// Delete removes one of the authenticated admin's notifications.
func (h *NotificationHandler) Delete(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.Delete(c.Request().Context(), admin.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted successfully")
}
