package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when signup claims an identifier that
	// an existing account already holds.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUIDAssignmentConflict is returned when the identifier the store
	// assigned to a new account is already held by another document.
	ErrUIDAssignmentConflict = errors.New("assigned user id is already taken")

	// ErrNoUserWasFound is returned when no account matches the requested
	// identifier.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCacheMiss is returned by [UserCache] implementations when the key
	// is absent.
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
