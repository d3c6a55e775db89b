package impl

import (
	"context"
	"log/slog"

	deliverycontext "pressroom/internal/delivery/context"
	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	admins   repository.AdminRepository
	sessions repository.RefreshTokenRepository
	hasher   service.PasswordHasher
	events   service.EventPublisher
	logger   *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	admins repository.AdminRepository,
	sessions repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		admins:   admins,
		sessions: sessions,
		hasher:   hasher,
		events:   events,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Create(ctx context.Context, input usecase.CreateAdminInput) (*entity.Admin, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role.String())
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	admin := &entity.Admin{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Permissions:  entity.PermissionsForRole(input.Role),
		IsActive:     true,
	}

	if err := srv.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.events.Publish(ctx, &service.Event{
		Type:        service.EventAdminCreated,
		RelatedID:   admin.ID,
		RelatedType: "admin",
		Fields: map[string]string{
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role.String(),
		},
	})

	srv.log(ctx).Info("Admin created", slog.Any("admin_id", admin.ID), slog.String("role", admin.Role.String()))

	return admin, nil
}

func (srv *adminService) Get(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	return admin, nil
}

func (srv *adminService) List(ctx context.Context, filter repository.AdminListFilter) (*usecase.AdminListOutput, error) {
	admins, total, err := srv.admins.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	return &usecase.AdminListOutput{Admins: admins, Total: total}, nil
}

func (srv *adminService) Update(ctx context.Context, actorID, id uuid.UUID, input usecase.UpdateAdminInput) (*entity.Admin, error) {
	if actorID == id {
		return nil, domainerrors.ErrSelfMutation
	}

	admin, err := srv.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if input.Name != nil {
		admin.Name = *input.Name
	}
	if input.Email != nil {
		admin.Email = *input.Email
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role.String())
		}
		// Permission flags always follow the role.
		admin.ChangeRole(*input.Role)
	}

	deactivated := false
	if input.IsActive != nil {
		deactivated = admin.IsActive && !*input.IsActive
		admin.IsActive = *input.IsActive
	}

	if err := srv.admins.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to update admin")
	}

	// A disabled admin should not keep a working refresh token.
	if deactivated {
		if err := srv.sessions.DeleteByAdminID(ctx, admin.ID); err != nil {
			srv.log(ctx).Warn("Failed to end sessions of deactivated admin", slog.Any("error", err), slog.Any("admin_id", admin.ID))
		}
	}

	return admin, nil
}

func (srv *adminService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return domainerrors.ErrSelfMutation
	}

	if err := srv.admins.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to delete admin")
	}

	if err := srv.sessions.DeleteByAdminID(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to end sessions of deleted admin", slog.Any("error", err), slog.Any("admin_id", id))
	}

	srv.log(ctx).Info("Admin deleted", slog.Any("admin_id", id))

	return nil
}
