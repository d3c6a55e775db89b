package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthUsecase struct {
	usecase.AuthUsecase
	loginFn func(input usecase.LoginInput) (*usecase.LoginOutput, error)
}

func (s *stubAuthUsecase) Login(_ context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(input)
}

type stubTokenService struct {
	service.TokenService
	refreshTTL time.Duration
}

func (s *stubTokenService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func TestAuthHandler_Login_CookieTracksRefreshTokenLifetime(t *testing.T) {
	stub := &stubAuthUsecase{
		loginFn: func(usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
				Admin: &entity.Admin{
					ID:    uuid.New(),
					Name:  "Jane",
					Email: "jane@example.com",
					Role:  entity.RoleSuperAdmin,
				},
			}, nil
		},
	}
	tokens := &stubTokenService{refreshTTL: 48 * time.Hour}

	e := newTestEcho()
	e.POST("/api/auth/login", NewAuthHandler(stub, tokens, testLogger()).Login)

	body := `{"email":"jane@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	before := time.Now()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == refreshCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the refresh token cookie")
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// Cookie expiry follows the configured refresh token lifetime rather than
	// a fixed default.
	assert.WithinDuration(t, before.Add(tokens.refreshTTL), cookie.Expires, time.Minute)
}
