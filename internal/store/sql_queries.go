package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-session/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, first_name, last_name)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, first_name, last_name, is_verified, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password_hash, first_name, last_name, is_verified, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, first_name, last_name, is_verified, created_at, updated_at
    FROM users
    WHERE id = $1;`

	updateUserPassword = `UPDATE users
    SET password_hash = $1, updated_at = NOW()
    WHERE id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var passwordResetColumns = []string{"id", "user_id", "email", "token_hash", "expires_at", "used", "created_at"}

func buildDeleteUserResetsQuery(userID string) (string, []any, error) {
	return psql.Delete(models.PasswordReset{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertResetQuery(reset models.PasswordReset) (string, []any, error) {
	return psql.Insert(models.PasswordReset{}.TableName()).
		Columns("user_id", "email", "token_hash", "expires_at").
		Values(reset.UserID, reset.Email, reset.TokenHash, reset.ExpiresAt).
		ToSql()
}

func buildFindActiveResetQuery(tokenHash string, now time.Time) (string, []any, error) {
	return psql.Select(passwordResetColumns...).
		From(models.PasswordReset{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash, "used": false}).
		Where(sq.Gt{"expires_at": now}).
		Limit(1).
		ToSql()
}

func buildMarkResetUsedQuery(resetID string) (string, []any, error) {
	return psql.Update(models.PasswordReset{}.TableName()).
		Set("used", true).
		Where(sq.Eq{"id": resetID, "used": false}).
		ToSql()
}

func buildDeleteExpiredResetsQuery(now time.Time) (string, []any, error) {
	return psql.Delete(models.PasswordReset{}.TableName()).
		Where(sq.Or{
			sq.Eq{"used": true},
			sq.LtOrEq{"expires_at": now},
		}).
		ToSql()
}
