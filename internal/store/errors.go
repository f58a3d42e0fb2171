package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by login matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSecuredEntityNotFound is returned when no secured entity has the
	// requested id.
	ErrSecuredEntityNotFound = errors.New("secured entity was not found")

	// ErrSecuredEntityNotSaved is returned when an INSERT completes without
	// error but affects no rows.
	ErrSecuredEntityNotSaved = errors.New("secured entity was not saved")

	// ErrBlobNotFound is returned when a blob key does not exist.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobKey is returned for keys that escape the storage root.
	ErrInvalidBlobKey = errors.New("invalid blob key")

	// ErrUnsupportedDriver is returned for database drivers other than
	// pgx and sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrStoringBlob is returned when a blob backend rejects a write.
	ErrStoringBlob = errors.New("failed to store blob")
)
