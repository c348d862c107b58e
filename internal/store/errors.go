package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFoodEntryNotFound is returned when a food entry does not exist or is
	// owned by another user. Both cases look the same to the caller.
	ErrFoodEntryNotFound = errors.New("food entry was not found")

	// ErrLocalSessionNotFound is returned by the client session repository
	// when nobody is logged in on this device.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrUploadFailed wraps blob storage write failures.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrBlobNotFound is returned when a blob key does not exist.
	ErrBlobNotFound = errors.New("image was not found")

	// ErrInvalidBlobKey is returned for keys that are empty or escape the
	// storage root.
	ErrInvalidBlobKey = errors.New("invalid image key")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
