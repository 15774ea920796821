package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-session/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts of the authentication server.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields. Returns [ErrEmailAlreadyExists] on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// PasswordResetRepository persists single-use password reset grants.
type PasswordResetRepository interface {
	// ReplaceResetToken removes every previous grant of the user and stores
	// the new one in a single transaction.
	ReplaceResetToken(ctx context.Context, reset models.PasswordReset) error
	// FindActiveResetToken returns the unused, unexpired grant with the given
	// token hash, or [ErrResetTokenNotFound].
	FindActiveResetToken(ctx context.Context, tokenHash string, now time.Time) (models.PasswordReset, error)
	// ConsumeResetToken sets the new password hash and marks the grant used
	// in one transaction. Returns [ErrResetTokenNotFound] if the grant was
	// consumed concurrently.
	ConsumeResetToken(ctx context.Context, reset models.PasswordReset, passwordHash string) error
	// DeleteExpired purges used grants and grants expired before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
