package models

// SecurityContext is the per-request authentication state produced by the
// request authorization filter and consumed by the access-control matrix and
// the handlers. It is an explicit value threaded through context.Context,
// never ambient process state; exactly one instance exists per request.
type SecurityContext struct {
	// User is the resolved identity of the caller, nil when the request is
	// anonymous or the presented token failed validation.
	User *User

	// IsAuthenticated reports whether User carries a verified identity.
	IsAuthenticated bool
}

// Anonymous returns the SecurityContext of an unauthenticated request.
func Anonymous() SecurityContext {
	return SecurityContext{}
}

// Authenticated returns a SecurityContext bound to the given verified user.
func Authenticated(user *User) SecurityContext {
	return SecurityContext{User: user, IsAuthenticated: true}
}

// HasRole reports whether the context carries an authenticated user holding
// the given role.
func (s SecurityContext) HasRole(role Role) bool {
	return s.IsAuthenticated && s.User != nil && s.User.Role == role
}
