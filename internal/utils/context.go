// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/pvaldera/go-game-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SecurityContextCtxKey is the key used to store the per-request
// [models.SecurityContext] in the context. The security context is an
// explicit value populated once per request by the authorization filter;
// it is never shared between requests.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithSecurityContext(ctx, models.Authenticated(&user))
var SecurityContextCtxKey = contextKey("securityContext")

// WithSecurityContext returns a copy of ctx carrying the given
// [models.SecurityContext].
func WithSecurityContext(ctx context.Context, sc models.SecurityContext) context.Context {
	return context.WithValue(ctx, SecurityContextCtxKey, sc)
}

// GetSecurityContextFromContext retrieves the per-request security context.
//
// Returns the [models.SecurityContext] and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing (the request never passed through the
//     authorization filter); callers must treat this as anonymous
func GetSecurityContextFromContext(ctx context.Context) (models.SecurityContext, bool) {
	sc, ok := ctx.Value(SecurityContextCtxKey).(models.SecurityContext)
	return sc, ok
}
