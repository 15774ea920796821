package store

import (
	"database/sql"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/migrations"
)

// DB wraps *sql.DB with the logger and the error classificator of its driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the server (PostgreSQL) schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateLocal applies the client (SQLite) schema.
func (db *DB) MigrateLocal() error {
	return migrations.MigrateLocal(db.DB)
}
