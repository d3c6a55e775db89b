package handler

import (
	"strconv"
	"time"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Entities are never serialized directly; each one is mapped to a response
// shape here so fields like the password hash or a submitter's email cannot
// leak by accident.

type adminResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Role        entity.Role          `json:"role"`
	Permissions entity.PermissionSet `json:"permissions"`
	IsActive    bool                 `json:"isActive"`
	LastLogin   *time.Time           `json:"lastLogin,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func toAdminResponse(admin *entity.Admin) adminResponse {
	return adminResponse{
		ID:          admin.ID,
		Name:        admin.Name,
		Email:       admin.Email,
		Role:        admin.Role,
		Permissions: admin.Permissions,
		IsActive:    admin.IsActive,
		LastLogin:   admin.LastLogin,
		CreatedAt:   admin.CreatedAt,
		UpdatedAt:   admin.UpdatedAt,
	}
}

func toAdminResponses(admins []*entity.Admin) []adminResponse {
	out := make([]adminResponse, 0, len(admins))
	for _, admin := range admins {
		out = append(out, toAdminResponse(admin))
	}

	return out
}

type blogResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	Author        string            `json:"author"`
	FeaturedImage string            `json:"featuredImage,omitempty"`
	Categories    []string          `json:"categories"`
	Tags          []string          `json:"tags"`
	Slug          string            `json:"slug"`
	Status        entity.BlogStatus `json:"status"`
	Views         int64             `json:"views"`
	CreatedBy     uuid.UUID         `json:"createdBy"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func toBlogResponse(blog *entity.Blog) blogResponse {
	return blogResponse{
		ID:            blog.ID,
		Title:         blog.Title,
		Content:       blog.Content,
		Author:        blog.Author,
		FeaturedImage: blog.FeaturedImage,
		Categories:    blog.Categories,
		Tags:          blog.Tags,
		Slug:          blog.Slug,
		Status:        blog.Status,
		Views:         blog.Views,
		CreatedBy:     blog.CreatedBy,
		CreatedAt:     blog.CreatedAt,
		UpdatedAt:     blog.UpdatedAt,
	}
}

func toBlogResponses(blogs []*entity.Blog) []blogResponse {
	out := make([]blogResponse, 0, len(blogs))
	for _, blog := range blogs {
		out = append(out, toBlogResponse(blog))
	}

	return out
}

type storyResponse struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Content         string             `json:"content"`
	SubmitterName   string             `json:"submitterName"`
	SubmitterEmail  string             `json:"submitterEmail,omitempty"`
	Category        string             `json:"category"`
	Status          entity.StoryStatus `json:"status"`
	RejectionReason string             `json:"rejectionReason,omitempty"`
	Views           int64              `json:"views"`
	ReviewedBy      *uuid.UUID         `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time         `json:"reviewedAt,omitempty"`
	PublishedAt     *time.Time         `json:"publishedAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// toStoryResponse maps a story for staff consumers, submitter email included.
func toStoryResponse(story *entity.Story) storyResponse {
	return storyResponse{
		ID:              story.ID,
		Title:           story.Title,
		Content:         story.Content,
		SubmitterName:   story.SubmitterName,
		SubmitterEmail:  story.SubmitterEmail,
		Category:        story.Category,
		Status:          story.Status,
		RejectionReason: story.RejectionReason,
		Views:           story.Views,
		ReviewedBy:      story.ReviewedBy,
		ReviewedAt:      story.ReviewedAt,
		PublishedAt:     story.PublishedAt,
		CreatedAt:       story.CreatedAt,
		UpdatedAt:       story.UpdatedAt,
	}
}

// toPublicStoryResponse drops the submitter's email for public reads.
func toPublicStoryResponse(story *entity.Story) storyResponse {
	out := toStoryResponse(story)
	out.SubmitterEmail = ""

	return out
}

func toStoryResponses(stories []*entity.Story) []storyResponse {
	out := make([]storyResponse, 0, len(stories))
	for _, story := range stories {
		out = append(out, toStoryResponse(story))
	}

	return out
}

type waitlistResponse struct {
	ID          uuid.UUID             `json:"id"`
	FirstName   string                `json:"firstName"`
	LastName    string                `json:"lastName"`
	Email       string                `json:"email"`
	Status      entity.WaitlistStatus `json:"status"`
	NotifiedAt  *time.Time            `json:"notifiedAt,omitempty"`
	ConvertedAt *time.Time            `json:"convertedAt,omitempty"`
	IPAddress   string                `json:"ipAddress,omitempty"`
	UserAgent   string                `json:"userAgent,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func toWaitlistResponse(entry *entity.WaitlistEntry) waitlistResponse {
	return waitlistResponse{
		ID:          entry.ID,
		FirstName:   entry.FirstName,
		LastName:    entry.LastName,
		Email:       entry.Email,
		Status:      entry.Status,
		NotifiedAt:  entry.NotifiedAt,
		ConvertedAt: entry.ConvertedAt,
		IPAddress:   entry.IPAddress,
		UserAgent:   entry.UserAgent,
		CreatedAt:   entry.CreatedAt,
	}
}

func toWaitlistResponses(entries []*entity.WaitlistEntry) []waitlistResponse {
	out := make([]waitlistResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, toWaitlistResponse(entry))
	}

	return out
}

type notificationResponse struct {
	ID          uuid.UUID                   `json:"id"`
	Title       string                      `json:"title"`
	Message     string                      `json:"message"`
	Type        entity.NotificationType     `json:"type"`
	Priority    entity.NotificationPriority `json:"priority"`
	Read        bool                        `json:"read"`
	ReadAt      *time.Time                  `json:"readAt,omitempty"`
	RelatedID   *uuid.UUID                  `json:"relatedId,omitempty"`
	RelatedType string                      `json:"relatedType,omitempty"`
	ActionURL   string                      `json:"actionUrl,omitempty"`
	Metadata    map[string]any              `json:"metadata,omitempty"`
	CreatedAt   time.Time                   `json:"createdAt"`
}

func toNotificationResponse(notification *entity.Notification) notificationResponse {
	return notificationResponse{
		ID:          notification.ID,
		Title:       notification.Title,
		Message:     notification.Message,
		Type:        notification.Type,
		Priority:    notification.Priority,
		Read:        notification.Read,
		ReadAt:      notification.ReadAt,
		RelatedID:   notification.RelatedID,
		RelatedType: notification.RelatedType,
		ActionURL:   notification.ActionURL,
		Metadata:    notification.Metadata,
		CreatedAt:   notification.CreatedAt,
	}
}

func toNotificationResponses(notifications []*entity.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, toNotificationResponse(notification))
	}

	return out
}

// listEnvelope wraps a page of items with the total match count.
type listEnvelope struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// --- Query parameter helpers ---

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}

func queryTime(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if parsed, err = time.Parse("2006-01-02", raw); err != nil {
			return nil
		}
	}

	return &parsed
}

func pathID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
