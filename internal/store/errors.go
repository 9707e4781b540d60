package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when a query targets an entity record
	// (identified by entity_type and sync_id) that does not exist.
	ErrEntityNotFound = errors.New("entity record was not found")

	// ErrChangeNotFound is returned when a queue operation targets a pending
	// change row that does not exist or is not in the expected status.
	ErrChangeNotFound = errors.New("pending change was not found")

	// ErrRecordNotFound is returned by the server record repository when a
	// record does not exist for the given user, entity type and sync_id.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrLocalStorage wraps failures of the on-device durable store. Fatal
	// for the current sync cycle: the coordinator aborts without touching
	// the cursor and without losing queued changes.
	ErrLocalStorage = errors.New("local storage failure")
)

// Low-level database operation errors, returned (or wrapped) by repository
// methods when a SQL-level operation fails before any domain logic applies.
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

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
