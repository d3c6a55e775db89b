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

// waitlistService implements the WaitlistUsecase interface.
type waitlistService struct {
	waitlist repository.WaitlistRepository
	events   service.EventPublisher
	logger   *slog.Logger
	now      func() time.Time
}

// NewWaitlistService is the constructor for waitlistService.
func NewWaitlistService(
	waitlist repository.WaitlistRepository,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.WaitlistUsecase {
	return &waitlistService{
		waitlist: waitlist,
		events:   events,
		logger:   logger,
		now:      time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *waitlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *waitlistService) Signup(ctx context.Context, input usecase.WaitlistSignupInput) (*entity.WaitlistEntry, error) {
	entry := &entity.WaitlistEntry{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Status:    entity.WaitlistStatusPending,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}

	if err := srv.waitlist.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrDuplicateWaitlistEmail) {
			return nil, domainerrors.ErrWaitlistDuplicate
		}

		return nil, errors.Wrap(err, "failed to create waitlist entry")
	}

	srv.events.Publish(ctx, &service.Event{
		Type:        service.EventWaitlistSignup,
		RelatedID:   entry.ID,
		RelatedType: "waitlist",
		Fields: map[string]string{
			"firstName": entry.FirstName,
			"lastName":  entry.LastName,
			"email":     entry.Email,
		},
	})

	srv.log(ctx).Info("Waitlist signup", slog.Any("entry_id", entry.ID))

	return entry, nil
}

func (srv *waitlistService) Get(ctx context.Context, id uuid.UUID) (*entity.WaitlistEntry, error) {
	entry, err := srv.waitlist.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWaitlistNotFound) {
			return nil, domainerrors.ErrWaitlistNotFound
		}

		return nil, errors.Wrap(err, "failed to look up waitlist entry")
	}

	return entry, nil
}

func (srv *waitlistService) List(ctx context.Context, filter repository.WaitlistListFilter) (*usecase.WaitlistListOutput, error) {
	entries, total, err := srv.waitlist.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list waitlist entries")
	}

	return &usecase.WaitlistListOutput{Entries: entries, Total: total}, nil
}

func (srv *waitlistService) AdvanceStatus(ctx context.Context, id uuid.UUID, status entity.WaitlistStatus) (*entity.WaitlistEntry, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	entry, err := srv.waitlist.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWaitlistNotFound) {
			return nil, domainerrors.ErrWaitlistNotFound
		}

		return nil, errors.Wrap(err, "failed to look up waitlist entry")
	}

	previous := entry.Status
	entry.AdvanceStatus(status, srv.now())

	if err := srv.waitlist.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrWaitlistNotFound) {
			return nil, domainerrors.ErrWaitlistNotFound
		}

		return nil, errors.Wrap(err, "failed to update waitlist entry")
	}

	if status == entity.WaitlistStatusNotified && previous != entity.WaitlistStatusNotified {
		srv.events.Publish(ctx, &service.Event{
			Type:        service.EventWaitlistNotified,
			RelatedID:   entry.ID,
			RelatedType: "waitlist",
			Fields: map[string]string{
				"firstName": entry.FirstName,
				"email":     entry.Email,
			},
		})
	}

	return entry, nil
}

func (srv *waitlistService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.waitlist.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWaitlistNotFound) {
			return domainerrors.ErrWaitlistNotFound
		}

		return errors.Wrap(err, "failed to delete waitlist entry")
	}

	return nil
}
