package auth

import (
	"testing"
	"time"

	"pressroom/config"
	domainerrors "pressroom/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  5 * time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerifyAccessToken(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	adminID := uuid.New()
	token, err := svc.IssueAccessToken(adminID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, got)
}

func TestJWTService_AccessTokenExpiryBoundary(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	impl := svc.(*jwtService)
	issuedAt := time.Now()
	impl.now = func() time.Time { return issuedAt }

	token, err := svc.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	// One second before the five-hour mark the token still verifies.
	impl.now = func() time.Time { return issuedAt.Add(5*time.Hour - time.Second) }
	_, err = svc.VerifyAccessToken(token)
	assert.NoError(t, err)

	// At exactly five hours it does not.
	impl.now = func() time.Time { return issuedAt.Add(5 * time.Hour) }
	_, err = svc.VerifyAccessToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	token, err := svc.IssueRefreshToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.VerifyRefreshToken(token))

	// A refresh token never passes access verification: the type marker differs
	// and so does the signing secret.
	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_ForgedAndGarbageTokens(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	forged, err := otherSvc.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(forged)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))

	_, err = svc.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.Access = ""
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	h1 := svc.HashToken("some-token")
	h2 := svc.HashToken("some-token")
	h3 := svc.HashToken("another-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // SHA-256 hex
}

func TestJWTService_Durations(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 5*time.Hour, svc.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
