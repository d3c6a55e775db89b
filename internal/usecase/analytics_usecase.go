package usecase

import (
	"context"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
)

// AnalyticsRange bounds aggregations by creation time: inclusive From,
// exclusive To. Nil bounds leave that side open.
type AnalyticsRange struct {
	From *time.Time
	To   *time.Time
}

// OverviewOutput is the cross-domain dashboard summary.
type OverviewOutput struct {
	TotalBlogs      int64
	PublishedBlogs  int64
	TotalStories    int64
	PendingStories  int64
	TotalWaitlist   int64
	WaitlistByState map[entity.WaitlistStatus]int64
}

// StoryAnalyticsOutput aggregates stories by status and category.
type StoryAnalyticsOutput struct {
	Total      int64
	ByStatus   map[entity.StoryStatus]int64
	ByCategory []repository.StoryCategoryCount
}

// BlogAnalyticsOutput aggregates blog reach.
type BlogAnalyticsOutput struct {
	Total      int64
	Published  int64
	Drafts     int64
	TotalViews int64
	TopViewed  []*entity.Blog
}

// AnalyticsUsecase defines the interface for the reporting endpoints. All
// operations require the viewAnalytics permission.
type AnalyticsUsecase interface {
	Overview(ctx context.Context) (*OverviewOutput, error)

	Stories(ctx context.Context, dateRange AnalyticsRange) (*StoryAnalyticsOutput, error)

	Blogs(ctx context.Context) (*BlogAnalyticsOutput, error)
}
