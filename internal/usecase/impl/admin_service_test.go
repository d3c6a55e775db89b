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

type adminServiceFixtures struct {
	service  usecase.AdminUsecase
	admins   *fakeAdminRepo
	sessions *fakeSessionRepo
	events   *recordingPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	admins := newFakeAdminRepo()
	sessions := newFakeSessionRepo()
	events := &recordingPublisher{}
	svc := NewAdminService(admins, sessions, fakeHasher{}, events, testLogger())

	return adminServiceFixtures{service: svc, admins: admins, sessions: sessions, events: events}
}

func TestAdminService_Create_DerivesPermissionsFromRole(t *testing.T) {
	fx := createTestAdminService(t)

	admin, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name:     "Sam Lee",
		Email:    "sam@example.com",
		Password: "Secret123!",
		Role:     entity.RoleBlogManager,
	})

	require.NoError(t, err)
	assert.True(t, admin.IsActive)
	assert.Equal(t, entity.PermissionsForRole(entity.RoleBlogManager), admin.Permissions)
	assert.True(t, admin.Permissions.ManageBlogs)
	assert.False(t, admin.Permissions.ManageAdmins)
	assert.Equal(t, "hashed:Secret123!", admin.PasswordHash)

	events := fx.events.published()
	require.Len(t, events, 1)
	assert.Equal(t, service.EventAdminCreated, events[0].Type)
}

func TestAdminService_Create_DuplicateEmail(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "A", Email: "dup@example.com", Password: "x", Role: entity.RoleSuperAdmin,
	})
	require.NoError(t, err)

	_, err = fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "B", Email: "dup@example.com", Password: "y", Role: entity.RoleBlogManager,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAdminService_Create_UnknownRole(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "A", Email: "a@example.com", Password: "x", Role: entity.Role("janitor"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_Update_RoleChangeOverwritesPermissions(t *testing.T) {
	fx := createTestAdminService(t)
	actorID := uuid.New()

	admin, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "Sam", Email: "sam@example.com", Password: "x", Role: entity.RoleBlogManager,
	})
	require.NoError(t, err)

	role := entity.RoleStoryModerator
	updated, err := fx.service.Update(context.Background(), actorID, admin.ID, usecase.UpdateAdminInput{
		Role: &role,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleStoryModerator, updated.Role)
	// The whole flag set follows the role; nothing from the old role survives.
	assert.Equal(t, entity.PermissionsForRole(entity.RoleStoryModerator), updated.Permissions)
	assert.False(t, updated.Permissions.ManageBlogs)
	assert.True(t, updated.Permissions.ManageStories)
}

func TestAdminService_Update_SelfMutationRejected(t *testing.T) {
	fx := createTestAdminService(t)

	admin, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "Sam", Email: "sam@example.com", Password: "x", Role: entity.RoleSuperAdmin,
	})
	require.NoError(t, err)

	inactive := false
	_, err = fx.service.Update(context.Background(), admin.ID, admin.ID, usecase.UpdateAdminInput{
		IsActive: &inactive,
	})
	assert.ErrorIs(t, err, domainerrors.ErrSelfMutation)

	err = fx.service.Delete(context.Background(), admin.ID, admin.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfMutation)
}

func TestAdminService_Update_DeactivationEndsSession(t *testing.T) {
	fx := createTestAdminService(t)
	actorID := uuid.New()

	admin, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "Sam", Email: "sam@example.com", Password: "x", Role: entity.RoleBlogManager,
	})
	require.NoError(t, err)
	require.NoError(t, fx.sessions.Upsert(context.Background(), admin.ID, "somehash", timeInFuture()))

	inactive := false
	_, err = fx.service.Update(context.Background(), actorID, admin.ID, usecase.UpdateAdminInput{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	assert.Nil(t, fx.sessions.sessionFor(admin.ID))
}

func TestAdminService_Delete_EndsSession(t *testing.T) {
	fx := createTestAdminService(t)
	actorID := uuid.New()

	admin, err := fx.service.Create(context.Background(), usecase.CreateAdminInput{
		Name: "Sam", Email: "sam@example.com", Password: "x", Role: entity.RoleBlogManager,
	})
	require.NoError(t, err)
	require.NoError(t, fx.sessions.Upsert(context.Background(), admin.ID, "somehash", timeInFuture()))

	require.NoError(t, fx.service.Delete(context.Background(), actorID, admin.ID))

	_, err = fx.service.Get(context.Background(), admin.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
	assert.Nil(t, fx.sessions.sessionFor(admin.ID))
}
