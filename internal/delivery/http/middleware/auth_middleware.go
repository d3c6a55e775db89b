package middleware

import (
	"strings"

	deliverycontext "pressroom/internal/delivery/context"
	"pressroom/internal/delivery/http/response"
	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for access-token authentication and
// role/permission authorization.
type AuthMiddleware struct {
	tokens service.TokenService
	admins repository.AdminRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService, admins repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, admins: admins}
}

// Authenticate validates the Bearer access token and loads the admin it was
// issued for. Invalid tokens, missing accounts and deactivated accounts all
// fail with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		admin, ok := m.resolveAdmin(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		setCurrentAdmin(c, admin)

		return next(c)
	}
}

// OptionalAuthenticate resolves the admin when a valid token is present and
// silently continues without an identity otherwise. Public read endpoints use
// it to vary visibility.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if admin, ok := m.resolveAdmin(c); ok {
			setCurrentAdmin(c, admin)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the resolved admin's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, ok := CurrentAdmin(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied")
			}

			if !entity.Roles(roles).Contains(admin.Role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role not allowed")
			}

			return next(c)
		}
	}
}

// RequirePermission is a middleware factory that checks one permission flag.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequirePermission(flag string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, ok := CurrentAdmin(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied")
			}

			if !admin.Permissions.Has(flag) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: missing '"+flag+"' permission")
			}

			return next(c)
		}
	}
}

// CurrentAdmin returns the admin resolved by Authenticate, if any.
func CurrentAdmin(c echo.Context) (*entity.Admin, bool) {
	admin, ok := c.Get(string(deliverycontext.KeyAdmin)).(*entity.Admin)

	return admin, ok
}

func setCurrentAdmin(c echo.Context, admin *entity.Admin) {
	c.Set(string(deliverycontext.KeyAdmin), admin)
}

func (m *AuthMiddleware) resolveAdmin(c echo.Context) (*entity.Admin, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return nil, false
	}

	adminID, err := m.tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, false
	}

	admin, err := m.admins.FindByID(c.Request().Context(), adminID)
	if err != nil || !admin.IsActive {
		return nil, false
	}

	return admin, true
}
