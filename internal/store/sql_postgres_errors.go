package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repository what to do with a failed
// statement.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, busy files,
	// serialization rollbacks.
	Retryable

	// Conflict marks a unique key collision with a concurrent writer.
	// Replacing upserts retry once on it.
	Conflict
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify maps the SQLSTATE of a *pgconn.PgError. Errors from outside the
// driver are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return Conflict
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
