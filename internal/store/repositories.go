package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
)

// Repositories groups the server-side repositories.
type Repositories struct {
	UserRepository          UserRepository
	PasswordResetRepository PasswordResetRepository

	db *DB
}

// NewRepositories connects to PostgreSQL, applies pending migrations and
// wires every repository to the same connection pool.
func NewRepositories(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:          NewUserRepository(db, logger),
		PasswordResetRepository: NewPasswordResetRepository(db, logger),
		db:                      db,
	}, nil
}

// Close releases the connection pool.
func (r *Repositories) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
