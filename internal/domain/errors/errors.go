// Package errors defines the application error model: typed errors carrying an
// HTTP status, a stable business code, and a user-facing message.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)
	ErrAccountDisabled = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DISABLED",
		"This account has been deactivated",
		"",
	)
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)
	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Invalid or expired password reset token",
		"",
	)

	// Authorization
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)
	ErrSelfMutation = NewBaseError(
		http.StatusBadRequest,
		"SELF_MUTATION",
		"You cannot modify or delete your own account through admin management",
		"",
	)

	// Admins
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Admin not found",
		"",
	)
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Email already registered",
		"",
	)

	// Content
	ErrBlogNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOG_NOT_FOUND",
		"Blog post not found",
		"",
	)
	ErrStoryNotFound = NewBaseError(
		http.StatusNotFound,
		"STORY_NOT_FOUND",
		"Story not found",
		"",
	)
	ErrWaitlistNotFound = NewBaseError(
		http.StatusNotFound,
		"WAITLIST_NOT_FOUND",
		"Waitlist entry not found",
		"",
	)
	ErrWaitlistDuplicate = NewBaseError(
		http.StatusBadRequest,
		"WAITLIST_DUPLICATE",
		"Email already registered",
		"",
	)
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	// Upload
	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Image payload is not a valid base64-encoded image",
		"",
	)

	// Fallback
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
