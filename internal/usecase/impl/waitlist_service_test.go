package impl

import (
	"context"
	"testing"

	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type waitlistServiceFixtures struct {
	service usecase.WaitlistUsecase
	events  *recordingPublisher
}

func createTestWaitlistService(t *testing.T) waitlistServiceFixtures {
	t.Helper()

	events := &recordingPublisher{}

	return waitlistServiceFixtures{
		service: NewWaitlistService(newFakeWaitlistRepo(), events, testLogger()),
		events:  events,
	}
}

func TestWaitlistService_Signup(t *testing.T) {
	fx := createTestWaitlistService(t)

	entry, err := fx.service.Signup(context.Background(), usecase.WaitlistSignupInput{
		FirstName: "Noor",
		LastName:  "Haddad",
		Email:     "noor@example.com",
		IPAddress: "203.0.113.9",
		UserAgent: "Mozilla/5.0",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.WaitlistStatusPending, entry.Status)
	assert.Equal(t, "203.0.113.9", entry.IPAddress)

	events := fx.events.published()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventWaitlistSignup, events[0].Type)
}

func TestWaitlistService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestWaitlistService(t)

	_, err := fx.service.Signup(context.Background(), usecase.WaitlistSignupInput{
		FirstName: "Noor", LastName: "Haddad", Email: "noor@example.com",
	})
	require.NoError(t, err)

	_, err = fx.service.Signup(context.Background(), usecase.WaitlistSignupInput{
		FirstName: "Other", LastName: "Person", Email: "noor@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrWaitlistDuplicate)
}

func TestWaitlistService_AdvanceStatus_StampsOnce(t *testing.T) {
	fx := createTestWaitlistService(t)

	entry, err := fx.service.Signup(context.Background(), usecase.WaitlistSignupInput{
		FirstName: "Noor", LastName: "Haddad", Email: "noor@example.com",
	})
	require.NoError(t, err)

	notified, err := fx.service.AdvanceStatus(context.Background(), entry.ID, entity.WaitlistStatusNotified)
	require.NoError(t, err)
	require.NotNil(t, notified.NotifiedAt)
	firstStamp := *notified.NotifiedAt

	// Invitation email fires on the first transition to notified.
	events := fx.events.published()
	require.Len(t, events, 2)
	assert.Equal(t, service.EventWaitlistNotified, events[1].Type)

	// Re-notifying from notified does not send a second invitation.
	_, err = fx.service.AdvanceStatus(context.Background(), entry.ID, entity.WaitlistStatusNotified)
	require.NoError(t, err)
	assert.Len(t, fx.events.published(), 2)

	converted, err := fx.service.AdvanceStatus(context.Background(), entry.ID, entity.WaitlistStatusConverted)
	require.NoError(t, err)
	require.NotNil(t, converted.ConvertedAt)
	assert.Equal(t, firstStamp, *converted.NotifiedAt)
}

func TestWaitlistService_AdvanceStatus_UnknownStatus(t *testing.T) {
	fx := createTestWaitlistService(t)

	entry, err := fx.service.Signup(context.Background(), usecase.WaitlistSignupInput{
		FirstName: "Noor", LastName: "Haddad", Email: "noor@example.com",
	})
	require.NoError(t, err)

	_, err = fx.service.AdvanceStatus(context.Background(), entry.ID, entity.WaitlistStatus("vip"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
