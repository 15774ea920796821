package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-session/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts, checks credentials and issues tokens.
type AuthService interface {
	// SignUp creates an account with a bcrypt-hashed password.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	// SignIn checks the credentials and issues an access token.
	SignIn(ctx context.Context, req models.SignInRequest) (models.AccessToken, error)
	// CurrentUser loads the account a validated token belongs to.
	CurrentUser(ctx context.Context, userID string) (models.User, error)
	// ParseToken validates signature, issuer and expiry of a bearer token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PasswordResetService runs the forgot/reset password flow.
type PasswordResetService interface {
	// RequestReset emails a single-use link to email if it is registered.
	// Unknown addresses succeed silently.
	RequestReset(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and sets the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
	// PurgeExpired removes used and expired grants older than now.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
