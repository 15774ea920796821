package store

import (
	"context"

	"github.com/MKhiriev/go-auth-session/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository is the durable client-side slot for the current
// session: one access token and one cached profile.
type LocalSessionRepository interface {
	// SaveSession writes both slots atomically, replacing previous values.
	SaveSession(ctx context.Context, token string, profile models.User) error
	// GetToken returns [ErrLocalSessionNotFound] when no token is stored.
	GetToken(ctx context.Context) (string, error)
	// GetProfile returns [ErrLocalSessionNotFound] when no profile is stored.
	GetProfile(ctx context.Context) (models.User, error)
	// DeleteSession removes both slots. Deleting an empty session is not an error.
	DeleteSession(ctx context.Context) error
}
