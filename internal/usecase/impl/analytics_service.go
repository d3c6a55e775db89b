package impl

import (
	"context"
	"log/slog"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/usecase"

	"github.com/pkg/errors"
)

const topViewedLimit = 5

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	blogs    repository.BlogRepository
	stories  repository.StoryRepository
	waitlist repository.WaitlistRepository
	logger   *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(
	blogs repository.BlogRepository,
	stories repository.StoryRepository,
	waitlist repository.WaitlistRepository,
	logger *slog.Logger,
) usecase.AnalyticsUsecase {
	return &analyticsService{
		blogs:    blogs,
		stories:  stories,
		waitlist: waitlist,
		logger:   logger,
	}
}

func (srv *analyticsService) Overview(ctx context.Context) (*usecase.OverviewOutput, error) {
	blogStats, err := srv.blogs.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate blogs")
	}

	storyCounts, err := srv.stories.CountByStatus(ctx, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stories")
	}

	waitlistCounts, err := srv.waitlist.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate waitlist")
	}

	var totalStories int64
	for _, count := range storyCounts {
		totalStories += count
	}
	var totalWaitlist int64
	for _, count := range waitlistCounts {
		totalWaitlist += count
	}

	return &usecase.OverviewOutput{
		TotalBlogs:      blogStats.Total,
		PublishedBlogs:  blogStats.Published,
		TotalStories:    totalStories,
		PendingStories:  storyCounts[entity.StoryStatusPending],
		TotalWaitlist:   totalWaitlist,
		WaitlistByState: waitlistCounts,
	}, nil
}

func (srv *analyticsService) Stories(ctx context.Context, dateRange usecase.AnalyticsRange) (*usecase.StoryAnalyticsOutput, error) {
	byStatus, err := srv.stories.CountByStatus(ctx, dateRange.From, dateRange.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stories by status")
	}

	byCategory, err := srv.stories.CountByCategory(ctx, dateRange.From, dateRange.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stories by category")
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	return &usecase.StoryAnalyticsOutput{
		Total:      total,
		ByStatus:   byStatus,
		ByCategory: byCategory,
	}, nil
}

func (srv *analyticsService) Blogs(ctx context.Context) (*usecase.BlogAnalyticsOutput, error) {
	stats, err := srv.blogs.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate blogs")
	}

	topViewed, err := srv.blogs.TopViewed(ctx, topViewedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top posts")
	}

	return &usecase.BlogAnalyticsOutput{
		Total:      stats.Total,
		Published:  stats.Published,
		Drafts:     stats.Drafts,
		TotalViews: stats.TotalViews,
		TopViewed:  topViewed,
	}, nil
}
