package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// index on identities.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrIdentityNotFound is returned when a lookup matches no identity.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrCacheMiss is returned by [ProfileCache.Get] when nothing is cached
	// for the id.
	ErrCacheMiss = errors.New("profile is not cached")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrConnectingDB is returned when the database cannot be opened or
	// does not answer a ping.
	ErrConnectingDB = errors.New("error connecting database")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails for
	// any reason other than a unique violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan identity row")

	// ErrCacheUnavailable wraps failures talking to the cache backend.
	ErrCacheUnavailable = errors.New("profile cache is unavailable")
)
