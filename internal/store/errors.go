package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrWineNotFound is returned when a lookup by identifier matches no
	// catalog record.
	ErrWineNotFound = errors.New("wine was not found")

	// ErrWineNotSaved is returned when an INSERT completes without error but
	// affects no rows, indicating that nothing was persisted.
	ErrWineNotSaved = errors.New("wine was not saved")

	// ErrWineConstraintViolation is returned when the database rejects a
	// record because it breaks a table constraint (duplicate identifier,
	// NULL in a mandatory column, ...).
	ErrWineConstraintViolation = errors.New("wine violates a table constraint")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan wine row")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan wine rows")

	// ErrUnsupportedDSN is returned when a DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Cache errors.
var (
	// ErrCacheUnavailable is returned when the cache backend cannot be
	// reached.
	ErrCacheUnavailable = errors.New("cache is unavailable")

	// ErrCacheCorrupted is returned when a cached value cannot be decoded.
	ErrCacheCorrupted = errors.New("cached wine cannot be decoded")
)
