// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"pressroom/config"
	"pressroom/internal/domain/service"
	domainerrors "pressroom/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		now:           time.Now,
	}, nil
}

// IssueAccessToken produces a signed token encoding the admin identity.
func (s *jwtService) IssueAccessToken(adminID uuid.UUID) (string, error) {
	return s.sign(s.accessSecret, s.accessTTL, jwt.MapClaims{
		"sub":  adminID.String(),
		"type": tokenTypeAccess,
	})
}

// IssueRefreshToken produces an opaque signed token carrying only a type marker.
// The admin binding lives in the hashed server-side session record.
func (s *jwtService) IssueRefreshToken() (string, error) {
	return s.sign(s.refreshSecret, s.refreshTTL, jwt.MapClaims{
		"type": tokenTypeRefresh,
	})
}

// VerifyAccessToken checks signature, expiry, and type, returning the admin ID.
func (s *jwtService) VerifyAccessToken(token string) (uuid.UUID, error) {
	claims, err := s.verify(token, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, err
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "subject claim missing")
	}
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "malformed subject claim")
	}

	return adminID, nil
}

// VerifyRefreshToken checks signature, expiry, and type.
func (s *jwtService) VerifyRefreshToken(token string) error {
	_, err := s.verify(token, s.refreshSecret, tokenTypeRefresh)

	return err
}

// HashToken produces the SHA-256 hex digest under which opaque tokens are stored.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// AccessTokenDuration returns the configured access token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(secret string, ttl time.Duration, claims jwt.MapClaims) (string, error) {
	now := s.now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// verify checks signature and expiry against a secret. Any failure, whatever
// its cause, collapses into ErrInvalidToken so callers surface a uniform 401.
func (s *jwtService) verify(tokenString, secret, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token verification failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "unexpected claims format")
	}
	if claimType, _ := claims["type"].(string); claimType != wantType {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "unexpected token type")
	}

	return claims, nil
}
