// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pressroom/internal/delivery/http/middleware"
	"pressroom/internal/delivery/http/response"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// refreshCookieName is the http-only cookie carrying the refresh token for
// browser clients. API clients may send the token in the request body instead.
const refreshCookieName = "refresh_token"

// AuthHandler holds dependencies for authentication and session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	tokens service.TokenService
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, tokens service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, tokens: tokens, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Admin        adminResponse `json:"admin"`
}

// Login handles the admin login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Admin:        toAdminResponse(output.Admin),
	}, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh handles the token refresh request. The refresh token may arrive in
// the body or in the session cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := h.refreshTokenFrom(c)
	if token == "" {
		return response.Unauthorized(c, "INVALID_TOKEN", "Refresh token is missing")
	}

	output, err := h.uc.Refresh(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setRefreshCookie(c, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]string{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "Token refreshed successfully")
}

// Logout ends the session matching the refresh token. Unknown tokens still
// log out successfully.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.refreshTokenFrom(c); token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearRefreshCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a password reset link. The response is identical
// whether or not the email is registered.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input forgotPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "If that email is registered, a reset link is on its way")
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ResetPassword consumes a reset token and sets the new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input resetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Token:       input.Token,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// Me returns the authenticated admin's account.
func (h *AuthHandler) Me(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), admin.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminResponse(profile), "")
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfile changes the authenticated admin's own name and email.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.uc.UpdateProfile(c.Request().Context(), admin.ID, usecase.UpdateProfileInput{
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminResponse(updated), "Profile updated successfully")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword verifies the current password before setting the new one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	admin, ok := middleware.CurrentAdmin(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	var input changePasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	err := h.uc.ChangePassword(c.Request().Context(), admin.ID, usecase.ChangePasswordInput{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

func (h *AuthHandler) refreshTokenFrom(c echo.Context) string {
	var input refreshRequest
	if err := c.Bind(&input); err == nil && input.RefreshToken != "" {
		return input.RefreshToken
	}

	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/api/auth",
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteStrictMode,
		// The cookie lives exactly as long as the refresh token it carries.
		Expires: time.Now().Add(h.tokens.RefreshTokenDuration()),
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/auth",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
