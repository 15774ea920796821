package service

import "errors"

// Client-side errors.
var (
	// ErrNotAuthenticated is returned by operations that need a stored
	// session token when none is present. No request is sent in that case.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionNotPersisted is returned by Authenticate when the server
	// accepted the credentials but the session could not be written locally.
	ErrSessionNotPersisted = errors.New("session could not be persisted")
)

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that sign-in does not reveal registered addresses.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrInvalidResetToken    = errors.New("invalid or expired reset token")
	ErrResetTokenGeneration = errors.New("failed to generate reset token")
	ErrResetEmailFailed     = errors.New("failed to send reset email")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
