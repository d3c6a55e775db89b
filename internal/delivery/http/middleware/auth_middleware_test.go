package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStubToken = errors.New("token not recognized")

// stubTokenService maps known access tokens to admin IDs.
type stubTokenService struct {
	service.TokenService
	issued map[string]uuid.UUID
}

func (s *stubTokenService) VerifyAccessToken(token string) (uuid.UUID, error) {
	id, ok := s.issued[token]
	if !ok {
		return uuid.Nil, errStubToken
	}

	return id, nil
}

type stubAdminRepo struct {
	repository.AdminRepository
	admins map[uuid.UUID]*entity.Admin
}

func (s *stubAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	admin, ok := s.admins[id]
	if !ok {
		return nil, repository.ErrAdminNotFound
	}

	return admin, nil
}

func newTestAuthMiddleware(admin *entity.Admin, token string) *AuthMiddleware {
	tokens := &stubTokenService{issued: map[string]uuid.UUID{}}
	admins := &stubAdminRepo{admins: map[uuid.UUID]*entity.Admin{}}
	if admin != nil {
		tokens.issued[token] = admin.ID
		admins.admins[admin.ID] = admin
	}

	return NewAuthMiddleware(tokens, admins)
}

func performRequest(m echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, *entity.Admin) {
	e := echo.New()
	var resolved *entity.Admin
	e.GET("/protected", func(c echo.Context) error {
		resolved, _ = CurrentAdmin(c)

		return c.NoContent(http.StatusOK)
	}, m)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, resolved
}

func activeAdmin(role entity.Role) *entity.Admin {
	return &entity.Admin{
		ID:          uuid.New(),
		Name:        "Sam Rivera",
		Email:       "sam@example.com",
		Role:        role,
		Permissions: entity.PermissionsForRole(role),
		IsActive:    true,
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	admin := activeAdmin(entity.RoleBlogManager)
	m := newTestAuthMiddleware(admin, "good-token")

	rec, resolved := performRequest(m.Authenticate, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, admin.ID, resolved.ID)
}

func TestAuthenticate_MissingOrMalformedHeader(t *testing.T) {
	m := newTestAuthMiddleware(nil, "")

	for _, header := range []string{"", "good-token", "Basic abc"} {
		rec, _ := performRequest(m.Authenticate, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	m := newTestAuthMiddleware(activeAdmin(entity.RoleSuperAdmin), "good-token")

	rec, _ := performRequest(m.Authenticate, "Bearer forged-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InactiveAdmin(t *testing.T) {
	admin := activeAdmin(entity.RoleSuperAdmin)
	admin.IsActive = false
	m := newTestAuthMiddleware(admin, "good-token")

	rec, _ := performRequest(m.Authenticate, "Bearer good-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthenticate_ContinuesWithoutIdentity(t *testing.T) {
	m := newTestAuthMiddleware(nil, "")

	rec, resolved := performRequest(m.OptionalAuthenticate, "Bearer forged-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, resolved)
}

func TestRequirePermission(t *testing.T) {
	admin := activeAdmin(entity.RoleStoryModerator)
	m := newTestAuthMiddleware(admin, "good-token")

	run := func(flag string) int {
		e := echo.New()
		e.GET("/guarded", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, m.Authenticate, m.RequirePermission(flag))

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(entity.PermissionManageStories))
	assert.Equal(t, http.StatusForbidden, run(entity.PermissionManageAdmins))
}

func TestRequireRole(t *testing.T) {
	admin := activeAdmin(entity.RoleBlogManager)
	m := newTestAuthMiddleware(admin, "good-token")

	run := func(roles ...entity.Role) int {
		e := echo.New()
		e.GET("/guarded", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}, m.Authenticate, m.RequireRole(roles...))

		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run(entity.RoleBlogManager, entity.RoleSuperAdmin))
	assert.Equal(t, http.StatusForbidden, run(entity.RoleSuperAdmin))
}
