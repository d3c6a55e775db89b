package usecase

import (
	"context"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitStoryInput defines the data a member of the public submits.
type SubmitStoryInput struct {
	Title          string
	Content        string
	SubmitterName  string
	SubmitterEmail string
	Category       string
}

// UpdateStoryInput defines the editable fields of a story. Nil fields are
// left unchanged. Status transitions go through ReviewStory, not here.
type UpdateStoryInput struct {
	Title    *string
	Content  *string
	Category *string
}

// ReviewStoryInput defines a moderation decision.
type ReviewStoryInput struct {
	Status          entity.StoryStatus
	RejectionReason string
}

// StoryListOutput returns one page of stories plus the total match count.
type StoryListOutput struct {
	Stories []*entity.Story
	Total   int64
}

// StoryUsecase defines the interface for story submission and moderation.
type StoryUsecase interface {
	// Submit accepts a public story submission. Every submission enters the
	// queue as pending regardless of input.
	Submit(ctx context.Context, input SubmitStoryInput) (*entity.Story, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.Story, error)

	// GetPublished serves the public read path: only published stories are
	// returned and each read bumps the view counter.
	GetPublished(ctx context.Context, id uuid.UUID) (*entity.Story, error)

	List(ctx context.Context, filter repository.StoryListFilter) (*StoryListOutput, error)

	// Review applies a status transition on behalf of reviewerID. Rejections
	// require a reason.
	Review(ctx context.Context, reviewerID, id uuid.UUID, input ReviewStoryInput) (*entity.Story, error)

	Update(ctx context.Context, id uuid.UUID, input UpdateStoryInput) (*entity.Story, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
