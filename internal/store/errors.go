package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrContactNotFound is returned when a query or update targets a
	// contact (identified by its timestamp) that does not exist.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrContactNotSaved is returned when an INSERT or UPDATE of a contact
	// completes without error but the number of affected rows is zero,
	// indicating that nothing was actually persisted.
	ErrContactNotSaved = errors.New("contact was not saved")

	// ErrCatalogEmpty is returned when the property catalog could not be
	// seeded because the listings file held no valid entries.
	ErrCatalogEmpty = errors.New("property catalog is empty")
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
