package service

import (
	"context"

	"github.com/MKhiriev/go-auth-session/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the authenticated-session lifecycle of the
// client: it exchanges credentials with the server, persists the resulting
// bearer token together with the profile snapshot, and answers whether a
// session is active.
//
// It is the only component that reads or writes the stored session.
// Remote failures are returned as *adapter.RequestError unchanged.
// Operations are independent and not serialized: two concurrent
// Authenticate calls race and the last write wins.
type ClientSessionService interface {
	// Register creates an account. Nothing is persisted and the user is not
	// signed in.
	Register(ctx context.Context, req models.SignUpRequest) (models.MessageResponse, error)

	// Authenticate signs in and, on success, overwrites the stored token and
	// profile together. On failure nothing is persisted.
	Authenticate(ctx context.Context, req models.SignInRequest) (models.AccessToken, error)

	// RequestPasswordReset asks the server to email a reset link. On success
	// the fixed [PasswordResetRequestedAck] is returned whatever the server
	// said, so callers cannot tell registered addresses apart.
	RequestPasswordReset(ctx context.Context, email string) (models.MessageResponse, error)

	// CompletePasswordReset sets a new password with a reset token received
	// by email. The stored session is not touched.
	CompletePasswordReset(ctx context.Context, resetToken, newPassword string) (models.MessageResponse, error)

	// FetchCurrentProfile asks the server for the profile of the stored
	// token. Without a stored token it returns [ErrNotAuthenticated] and
	// sends nothing. The cached profile is not updated and a rejected token
	// is not cleared.
	FetchCurrentProfile(ctx context.Context) (models.User, error)

	// VerifySession reports whether the server still accepts the stored
	// token. It is false without a network call when no token is stored and
	// false on any failure. It never clears the stored session.
	VerifySession(ctx context.Context) bool

	// EndSession removes the stored token and profile. No request is sent.
	// A storage error is logged and leaves the stored session in place, so
	// HasStoredToken keeps reporting true until a later call succeeds.
	EndSession(ctx context.Context)

	// HasStoredToken reports whether a token is stored.
	HasStoredToken(ctx context.Context) bool

	// CurrentToken returns the stored token, if any.
	CurrentToken(ctx context.Context) (string, bool)

	// CachedProfile returns the profile stored at sign-in, if any. It may be
	// stale.
	CachedProfile(ctx context.Context) (models.User, bool)
}
