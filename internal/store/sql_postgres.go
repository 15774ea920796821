package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"
)

const pingMaxRetries = 5

var pingBaseDelay = 500 * time.Millisecond

// NewConnectPostgres opens a pgx-backed *sql.DB and pings it.
//
// Pings failing with a retryable error (see [PostgresErrorClassifier]) are
// retried with exponential backoff, so the server survives a database that
// is still starting up.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()
	if err = pingWithRetry(ctx, conn, classifier, log); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func pingWithRetry(ctx context.Context, conn pinger, classifier ErrorClassificator, log *logger.Logger) error {
	backoff := retry.WithMaxRetries(pingMaxRetries, retry.NewExponential(pingBaseDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}
		if classifier.Classify(err) == Retryable {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database is not ready, retrying ping")
			return retry.RetryableError(err)
		}
		return err
	})
}
