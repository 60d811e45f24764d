package models

// Role is the closed set of authorization roles a user account can hold.
// It is stored as-is in the database and embedded as the "role" claim in
// issued JWT tokens.
type Role string

const (
	// RoleUser is the lowest-privilege role. Every account created through
	// public registration receives it; it can never be chosen by the caller.
	RoleUser Role = "USER"

	// RoleAdmin grants write access to the catalog and full access to user
	// management endpoints.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String implements the fmt.Stringer interface.
func (r Role) String() string {
	return string(r)
}
