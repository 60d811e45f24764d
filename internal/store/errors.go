package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrGenreNotFound is returned when a genre lookup by ID matches nothing.
	ErrGenreNotFound = errors.New("genre was not found")

	// ErrGenreNameExists is returned when creating or renaming a genre would
	// collide with an existing genre name.
	ErrGenreNameExists = errors.New("genre name already exists")

	// ErrDeveloperNotFound is returned when a developer lookup by ID matches
	// nothing.
	ErrDeveloperNotFound = errors.New("developer was not found")

	// ErrStudioNameExists is returned when creating or renaming a developer
	// would collide with an existing studio name.
	ErrStudioNameExists = errors.New("studio name already exists")

	// ErrGameNotFound is returned when a game lookup by ID matches nothing.
	ErrGameNotFound = errors.New("game was not found")

	// ErrGameReferenceMissing is returned when an INSERT or UPDATE of a game
	// references a genre or developer that does not exist.
	ErrGameReferenceMissing = errors.New("referenced genre or developer does not exist")

	// ErrRatingExists is returned when an INSERT of a rating violates the
	// (user_id, game_id) unique constraint. The constraint is the
	// authoritative duplicate guard: a race lost by the service layer's
	// advisory existence check still surfaces as this error.
	ErrRatingExists = errors.New("rating for this user and game already exists")

	// ErrRatingReferenceMissing is returned when an INSERT of a rating
	// references a user or game that does not exist.
	ErrRatingReferenceMissing = errors.New("referenced user or game does not exist")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
