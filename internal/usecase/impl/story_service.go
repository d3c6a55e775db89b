package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pressroom/internal/delivery/context"
	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// storyService implements the StoryUsecase interface.
type storyService struct {
	stories repository.StoryRepository
	events  service.EventPublisher
	logger  *slog.Logger
	now     func() time.Time
}

// NewStoryService is the constructor for storyService.
func NewStoryService(
	stories repository.StoryRepository,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.StoryUsecase {
	return &storyService{
		stories: stories,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *storyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *storyService) Submit(ctx context.Context, input usecase.SubmitStoryInput) (*entity.Story, error) {
	story := &entity.Story{
		ID:             uuid.New(),
		Title:          input.Title,
		Content:        input.Content,
		SubmitterName:  input.SubmitterName,
		SubmitterEmail: input.SubmitterEmail,
		Category:       input.Category,
		Status:         entity.StoryStatusPending,
	}

	if err := srv.stories.Create(ctx, story); err != nil {
		return nil, errors.Wrap(err, "failed to create story")
	}

	srv.events.Publish(ctx, &service.Event{
		Type:        service.EventStorySubmitted,
		RelatedID:   story.ID,
		RelatedType: "story",
		Fields: map[string]string{
			"title":          story.Title,
			"submitterName":  story.SubmitterName,
			"submitterEmail": story.SubmitterEmail,
			"category":       story.Category,
		},
	})

	srv.log(ctx).Info("Story submitted", slog.Any("story_id", story.ID))

	return story, nil
}

func (srv *storyService) Get(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	story, err := srv.stories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to look up story")
	}

	return story, nil
}

func (srv *storyService) GetPublished(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	story, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if story.Status != entity.StoryStatusPublished {
		return nil, domainerrors.ErrStoryNotFound
	}

	if err := srv.stories.IncrementViews(ctx, story.ID); err != nil {
		srv.log(ctx).Warn("Failed to bump story views", slog.Any("error", err), slog.Any("story_id", story.ID))
	} else {
		story.Views++
	}

	return story, nil
}

func (srv *storyService) List(ctx context.Context, filter repository.StoryListFilter) (*usecase.StoryListOutput, error) {
	stories, total, err := srv.stories.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stories")
	}

	return &usecase.StoryListOutput{Stories: stories, Total: total}, nil
}

func (srv *storyService) Review(ctx context.Context, reviewerID, id uuid.UUID, input usecase.ReviewStoryInput) (*entity.Story, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(input.Status))
	}
	if input.Status == entity.StoryStatusRejected && input.RejectionReason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rejectionReason is required when rejecting")
	}

	story, err := srv.stories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to look up story")
	}

	previous := story.Status
	story.Review(input.Status, reviewerID, input.RejectionReason, srv.now())

	if err := srv.stories.Update(ctx, story); err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update story")
	}

	if story.Status != previous {
		srv.events.Publish(ctx, &service.Event{
			Type:        service.EventStoryReviewed,
			RelatedID:   story.ID,
			RelatedType: "story",
			Fields: map[string]string{
				"title":           story.Title,
				"status":          string(story.Status),
				"submitterName":   story.SubmitterName,
				"submitterEmail":  story.SubmitterEmail,
				"rejectionReason": story.RejectionReason,
			},
		})
	}

	srv.log(ctx).Info("Story reviewed",
		slog.Any("story_id", story.ID),
		slog.String("status", string(story.Status)),
		slog.Any("reviewer_id", reviewerID),
	)

	return story, nil
}

func (srv *storyService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateStoryInput) (*entity.Story, error) {
	story, err := srv.stories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to look up story")
	}

	if input.Title != nil {
		story.Title = *input.Title
	}
	if input.Content != nil {
		story.Content = *input.Content
	}
	if input.Category != nil {
		story.Category = *input.Category
	}

	if err := srv.stories.Update(ctx, story); err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update story")
	}

	return story, nil
}

func (srv *storyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.stories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return domainerrors.ErrStoryNotFound
		}

		return errors.Wrap(err, "failed to delete story")
	}

	srv.log(ctx).Info("Story deleted", slog.Any("story_id", id))

	return nil
}
