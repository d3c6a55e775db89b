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

// AnalyticsHandler holds dependencies for the reporting endpoints.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, logger: logger}
}

type overviewData struct {
	TotalBlogs      int64                           `json:"totalBlogs"`
	PublishedBlogs  int64                           `json:"publishedBlogs"`
	TotalStories    int64                           `json:"totalStories"`
	PendingStories  int64                           `json:"pendingStories"`
	TotalWaitlist   int64                           `json:"totalWaitlist"`
	WaitlistByState map[entity.WaitlistStatus]int64 `json:"waitlistByState"`
}

// Overview returns the cross-domain dashboard summary.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	output, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overviewData{
		TotalBlogs:      output.TotalBlogs,
		PublishedBlogs:  output.PublishedBlogs,
		TotalStories:    output.TotalStories,
		PendingStories:  output.PendingStories,
		TotalWaitlist:   output.TotalWaitlist,
		WaitlistByState: output.WaitlistByState,
	}, "")
}

type storyAnalyticsData struct {
	Total      int64                           `json:"total"`
	ByStatus   map[entity.StoryStatus]int64    `json:"byStatus"`
	ByCategory []repository.StoryCategoryCount `json:"byCategory"`
}

// Stories aggregates stories by status and category within an optional
// creation-time range ("from"/"to" query parameters).
func (h *AnalyticsHandler) Stories(c echo.Context) error {
	output, err := h.uc.Stories(c.Request().Context(), usecase.AnalyticsRange{
		From: queryTime(c, "from"),
		To:   queryTime(c, "to"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, storyAnalyticsData{
		Total:      output.Total,
		ByStatus:   output.ByStatus,
		ByCategory: output.ByCategory,
	}, "")
}

type blogAnalyticsData struct {
	Total      int64          `json:"total"`
	Published  int64          `json:"published"`
	Drafts     int64          `json:"drafts"`
	TotalViews int64          `json:"totalViews"`
	TopViewed  []blogResponse `json:"topViewed"`
}

// Blogs aggregates blog counts, reach and the most-read posts.
func (h *AnalyticsHandler) Blogs(c echo.Context) error {
	output, err := h.uc.Blogs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blogAnalyticsData{
		Total:      output.Total,
		Published:  output.Published,
		Drafts:     output.Drafts,
		TotalViews: output.TotalViews,
		TopViewed:  toBlogResponses(output.TopViewed),
	}, "")
}
