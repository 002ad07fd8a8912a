package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCardNotFound is returned when a query targets a review card
	// (identified by user_id and question_id) that does not exist.
	ErrCardNotFound = errors.New("review card was not found")

	// ErrQueueItemNotFound is returned when an update or delete targets a
	// sync queue item that is no longer in the queue.
	ErrQueueItemNotFound = errors.New("sync queue item was not found")

	// ErrAttemptNotFound is returned when a query targets a quiz attempt
	// that does not exist locally.
	ErrAttemptNotFound = errors.New("quiz attempt was not found")

	// ErrProgressNotFound is returned when a query targets a chapter
	// progress snapshot that does not exist locally.
	ErrProgressNotFound = errors.New("progress snapshot was not found")

	// ErrAttemptAlreadyExists is returned by the server-side attempt
	// repository when an INSERT hits the unique attempt_id constraint.
	// This is how duplicate deliveries of the same quiz submission are
	// recognised and deduplicated.
	ErrAttemptAlreadyExists = errors.New("quiz attempt already applied")

	// ErrReviewAlreadyApplied is returned by the server-side review
	// ingest repository when a rating event with the same
	// (user, question, reviewed_at) key has already been stored.
	ErrReviewAlreadyApplied = errors.New("review result already applied")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
