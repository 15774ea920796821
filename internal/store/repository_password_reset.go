package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/models"
)

// passwordResetRepository is the PostgreSQL-backed implementation of
// [PasswordResetRepository] over the "password_resets" table.
type passwordResetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPasswordResetRepository constructs a [PasswordResetRepository].
func NewPasswordResetRepository(db *DB, logger *logger.Logger) PasswordResetRepository {
	logger.Debug().Msg("creating password reset repository")
	return &passwordResetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *passwordResetRepository) ReplaceResetToken(ctx context.Context, reset models.PasswordReset) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteUserResetsQuery(reset.UserID)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ReplaceResetToken").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertResetQuery(reset)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ReplaceResetToken").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ReplaceResetToken").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// previous grants of the user become invalid
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ReplaceResetToken").Msg("error deleting previous reset tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ReplaceResetToken").Msg("error inserting reset token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ReplaceResetToken").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *passwordResetRepository) FindActiveResetToken(ctx context.Context, tokenHash string, now time.Time) (models.PasswordReset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActiveResetQuery(tokenHash, now)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.FindActiveResetToken").Msg("error building query")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reset models.PasswordReset
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&reset.ID, &reset.UserID, &reset.Email, &reset.TokenHash, &reset.ExpiresAt, &reset.Used, &reset.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordReset{}, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.FindActiveResetToken").Msg("error scanning reset token")
		return models.PasswordReset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return reset, nil
}

func (r *passwordResetRepository) ConsumeResetToken(ctx context.Context, reset models.PasswordReset, passwordHash string) error {
	log := logger.FromContext(ctx)

	markQuery, markArgs, err := buildMarkResetUsedQuery(reset.ID)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ConsumeResetToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ConsumeResetToken").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// mark used first: a concurrent consumer that lost the race sees zero rows
	result, err := tx.ExecContext(ctx, markQuery, markArgs...)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ConsumeResetToken").Msg("error marking reset token used")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrResetTokenNotFound
	}

	result, err = tx.ExecContext(ctx, updateUserPassword, passwordHash, reset.UserID)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ConsumeResetToken").Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err = result.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.ConsumeResetToken").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *passwordResetRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredResetsQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*passwordResetRepository.DeleteExpired").Msg("error deleting expired reset tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}
