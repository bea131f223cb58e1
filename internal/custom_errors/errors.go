package custom_errors

import "errors"

var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors
	ErrMissingToken = errors.New("authorization token is missing")
	ErrInvalidToken = errors.New("authorization token is invalid")
	ErrTokenExpired = errors.New("authorization token has expired")

	// Post errors
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("operation is allowed only for the post author")

	// Validation errors
	ErrValidation = errors.New("request validation failed")

	// Database errors
	ErrDatabaseQuery      = errors.New("database query error")
	ErrDatabaseScan       = errors.New("database scan error")
	ErrDatabaseConnection = errors.New("database connection error")
)
