package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/models"
)

// localSessionRepository keeps the session in the SQLite "session_slots"
// table, one row per slot. The profile is stored as its JSON encoding.
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] over db.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, token string, profile models.User) error {
	log := logger.FromContext(ctx)

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now().UTC()
	if _, err = tx.ExecContext(ctx, upsertSessionSlot, tokenSlot, token, now); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, upsertSessionSlot, profileSlot, string(profileJSON), now); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *localSessionRepository) GetToken(ctx context.Context) (string, error) {
	return r.getSlot(ctx, tokenSlot)
}

func (r *localSessionRepository) GetProfile(ctx context.Context) (models.User, error) {
	raw, err := r.getSlot(ctx, profileSlot)
	if err != nil {
		return models.User{}, err
	}

	var profile models.User
	if err = json.Unmarshal([]byte(raw), &profile); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSessionRepository.GetProfile").Msg("stored profile is corrupted")
		return models.User{}, fmt.Errorf("error decoding stored profile: %w", err)
	}

	return profile, nil
}

func (r *localSessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSlots, tokenSlot, profileSlot); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localSessionRepository) getSlot(ctx context.Context, name string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getSessionSlot, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localSessionRepository.getSlot").Str("slot", name).Msg("error reading session slot")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}
