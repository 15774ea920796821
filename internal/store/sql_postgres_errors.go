package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the connect loop whether a failed ping is worth
// another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryablePgCodes are the SQLSTATEs outside class 08 that a starting or
// overloaded server may answer with.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.CannotConnectNow:     {},
	pgerrcode.TooManyConnections:   {},
	pgerrcode.AdminShutdown:        {},
	pgerrcode.SerializationFailure: {},
	pgerrcode.DeadlockDetected:     {},
}

// PostgresErrorClassifier classifies pgx errors for [pingWithRetry].
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats an unreachable server and connection-class SQLSTATEs as
// retryable. Authentication, constraint and syntax failures are not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return Retryable
	}

	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}
	// class 08: connection exception
	if strings.HasPrefix(code, "08") {
		return Retryable
	}
	if _, ok := retryablePgCodes[code]; ok {
		return Retryable
	}
	return NonRetryable
}

// postgresError returns the SQLSTATE of err, or "" when err did not come
// from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
