package impl

import (
	"context"
	"testing"

	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storyServiceFixtures struct {
	service usecase.StoryUsecase
	stories *fakeStoryRepo
	events  *recordingPublisher
}

func createTestStoryService(t *testing.T) storyServiceFixtures {
	t.Helper()

	stories := newFakeStoryRepo()
	events := &recordingPublisher{}

	return storyServiceFixtures{
		service: NewStoryService(stories, events, testLogger()),
		stories: stories,
		events:  events,
	}
}

func TestStoryService_Submit_AlwaysPending(t *testing.T) {
	fx := createTestStoryService(t)

	story, err := fx.service.Submit(context.Background(), usecase.SubmitStoryInput{
		Title:          "My Neighborhood",
		Content:        "body",
		SubmitterName:  "Dana Cruz",
		SubmitterEmail: "dana@example.com",
		Category:       "community",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StoryStatusPending, story.Status)
	assert.Nil(t, story.ReviewedAt)
	assert.Nil(t, story.PublishedAt)

	events := fx.events.published()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventStorySubmitted, events[0].Type)
	assert.Equal(t, story.ID, events[0].RelatedID)
}

func TestStoryService_Review_ApproveStampsReviewOnce(t *testing.T) {
	fx := createTestStoryService(t)
	reviewer := uuid.New()

	story, err := fx.service.Submit(context.Background(), usecase.SubmitStoryInput{
		Title: "T", Content: "c", SubmitterName: "D", SubmitterEmail: "d@example.com",
	})
	require.NoError(t, err)

	approved, err := fx.service.Review(context.Background(), reviewer, story.ID, usecase.ReviewStoryInput{
		Status: entity.StoryStatusApproved,
	})
	require.NoError(t, err)
	require.NotNil(t, approved.ReviewedAt)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, reviewer, *approved.ReviewedBy)

	firstReviewedAt := *approved.ReviewedAt

	// A later transition by a different admin keeps the first review stamp.
	otherReviewer := uuid.New()
	published, err := fx.service.Review(context.Background(), otherReviewer, story.ID, usecase.ReviewStoryInput{
		Status: entity.StoryStatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, firstReviewedAt, *published.ReviewedAt)
	assert.Equal(t, reviewer, *published.ReviewedBy)
	require.NotNil(t, published.PublishedAt)
}

func TestStoryService_Review_RejectRequiresReason(t *testing.T) {
	fx := createTestStoryService(t)

	story, err := fx.service.Submit(context.Background(), usecase.SubmitStoryInput{
		Title: "T", Content: "c", SubmitterName: "D", SubmitterEmail: "d@example.com",
	})
	require.NoError(t, err)

	_, err = fx.service.Review(context.Background(), uuid.New(), story.ID, usecase.ReviewStoryInput{
		Status: entity.StoryStatusRejected,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	rejected, err := fx.service.Review(context.Background(), uuid.New(), story.ID, usecase.ReviewStoryInput{
		Status:          entity.StoryStatusRejected,
		RejectionReason: "off topic",
	})
	require.NoError(t, err)
	assert.Equal(t, "off topic", rejected.RejectionReason)
}

func TestStoryService_Review_EmitsReviewedEvent(t *testing.T) {
	fx := createTestStoryService(t)

	story, err := fx.service.Submit(context.Background(), usecase.SubmitStoryInput{
		Title: "T", Content: "c", SubmitterName: "D", SubmitterEmail: "d@example.com",
	})
	require.NoError(t, err)

	_, err = fx.service.Review(context.Background(), uuid.New(), story.ID, usecase.ReviewStoryInput{
		Status: entity.StoryStatusApproved,
	})
	require.NoError(t, err)

	events := fx.events.published()
	require.Len(t, events, 2) // submitted + reviewed
	assert.Equal(t, service.EventStoryReviewed, events[1].Type)
	assert.Equal(t, "approved", events[1].Fields["status"])
	assert.Equal(t, "d@example.com", events[1].Fields["submitterEmail"])
}

func TestStoryService_Review_SameStatusIsNoOp(t *testing.T) {
	fx := createTestStoryService(t)

	story, err := fx.service.Submit(context.Background(), usecase.SubmitStoryInput{
		Title: "T", Content: "c", SubmitterName: "D", SubmitterEmail: "d@example.com",
	})
	require.NoError(t, err)

	reviewed, err := fx.service.Review(context.Background(), uuid.New(), story.ID, usecase.ReviewStoryInput{
		Status: entity.StoryStatusPending,
	})
	require.NoError(t, err)
	assert.Nil(t, reviewed.ReviewedAt)

	// No reviewed event for a transition that went nowhere.
	assert.Len(t, fx.events.published(), 1)
}

func TestStoryService_GetPublished_HidesNonPublished(t *testing.T) {
	fx := createTestStoryService(t)

	story, err := fx.service.Submit(context.Background(), usecase.SubmitStoryInput{
		Title: "T", Content: "c", SubmitterName: "D", SubmitterEmail: "d@example.com",
	})
	require.NoError(t, err)

	_, err = fx.service.GetPublished(context.Background(), story.ID)
	assert.ErrorIs(t, err, domainerrors.ErrStoryNotFound)

	_, err = fx.service.Review(context.Background(), uuid.New(), story.ID, usecase.ReviewStoryInput{
		Status: entity.StoryStatusPublished,
	})
	require.NoError(t, err)

	published, err := fx.service.GetPublished(context.Background(), story.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), published.Views)
}
