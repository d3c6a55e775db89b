// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the self-service profile fields an admin may change.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// ChangePasswordInput defines the data required to change the current password.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordInput defines the data carried by a password reset link.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Admin        *entity.Admin
}

// RefreshOutput returns the renewed token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for authentication and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies credentials, stamps LastLogin and replaces the admin's
	// single active session. Inactive accounts fail exactly like bad credentials
	// would, with an account-disabled message.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new token pair, rotating
	// the stored session.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout ends the session matching the refresh token. Unknown tokens are
	// not an error: logout is idempotent.
	Logout(ctx context.Context, refreshToken string) error

	// ForgotPassword issues a single-use reset token and emails the reset link.
	// It reveals nothing about whether the email is registered.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword consumes a reset token, sets the new password and ends any
	// active session.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error

	// GetProfile returns the authenticated admin's account.
	GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)

	// UpdateProfile changes the admin's own name and email.
	UpdateProfile(ctx context.Context, adminID uuid.UUID, input UpdateProfileInput) (*entity.Admin, error)

	// ChangePassword verifies the current password before setting the new one.
	ChangePassword(ctx context.Context, adminID uuid.UUID, input ChangePasswordInput) error
}
