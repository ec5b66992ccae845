package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrNotFound is returned when a job request or ACL file addressed by
	// handle or route does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidRoute is returned for routes that cannot name a file inside
	// the data directory: empty, containing a path separator, or "..".
	ErrInvalidRoute = errors.New("invalid route")

	// ErrEmptyDSN is returned when no database DSN is configured.
	ErrEmptyDSN = errors.New("empty database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single job request row fails.
	ErrScanningRow = errors.New("failed to scan job request row")

	// ErrScanningRows is returned when iterating a job request result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan job request rows")
)
