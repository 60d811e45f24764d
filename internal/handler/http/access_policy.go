package http

import (
	"strings"

	"github.com/pvaldera/go-game-catalog/models"
)

// Requirement states what a request must present to pass an access rule.
type Requirement int

const (
	// RequirePublic lets the request through regardless of authentication.
	RequirePublic Requirement = iota

	// RequireAuthenticated lets any authenticated user through.
	RequireAuthenticated

	// RequireRole lets the request through only when the authenticated
	// user's role is listed in the rule's Roles set.
	RequireRole
)

// Decision is the outcome of evaluating a request against the policy.
type Decision int

const (
	DecisionAllow Decision = iota

	// DecisionUnauthenticated means the rule demands an authenticated user
	// and the request presented none. Maps to HTTP 401.
	DecisionUnauthenticated

	// DecisionForbidden means the user is authenticated but lacks the
	// required role. Maps to HTTP 403.
	DecisionForbidden
)

// AccessRule binds a set of HTTP methods and a path prefix to a Requirement.
// A Methods entry of "*" matches any method. The prefix matches the path
// itself or any of its sub-paths on a segment boundary, so "/videojuegos"
// matches "/videojuegos" and "/videojuegos/42" but not "/videojuegosx".
type AccessRule struct {
	Methods     []string
	PathPrefix  string
	Requirement Requirement
	Roles       []models.Role
}

// AccessPolicy is an ordered rule table evaluated first-match-wins.
// Requests matching no rule fall back to RequireAuthenticated.
type AccessPolicy struct {
	rules []AccessRule
}

// NewAccessPolicy returns the catalog's access table:
//
//   - POST   /auth/**            public (login, register)
//   - GET    /videojuegos/**     public
//   - GET    /generos/**         public
//   - GET    /desarrolladores/** public
//   - GET    /valoraciones/**    public
//   - POST   /valoraciones       any authenticated user
//   - POST/PUT/DELETE on the catalog resources: ADMIN only; other methods
//     fall through to the authenticated-users default and let the router
//     answer with 405
//   - /usuarios/**               ADMIN only, every method
func NewAccessPolicy() *AccessPolicy {
	catalogWrites := []string{"POST", "PUT", "DELETE"}

	return &AccessPolicy{
		rules: []AccessRule{
			{Methods: []string{"POST"}, PathPrefix: "/auth", Requirement: RequirePublic},

			{Methods: []string{"GET"}, PathPrefix: "/videojuegos", Requirement: RequirePublic},
			{Methods: []string{"GET"}, PathPrefix: "/generos", Requirement: RequirePublic},
			{Methods: []string{"GET"}, PathPrefix: "/desarrolladores", Requirement: RequirePublic},
			{Methods: []string{"GET"}, PathPrefix: "/valoraciones", Requirement: RequirePublic},

			{Methods: []string{"POST"}, PathPrefix: "/valoraciones", Requirement: RequireAuthenticated},

			{Methods: catalogWrites, PathPrefix: "/videojuegos", Requirement: RequireRole, Roles: []models.Role{models.RoleAdmin}},
			{Methods: catalogWrites, PathPrefix: "/generos", Requirement: RequireRole, Roles: []models.Role{models.RoleAdmin}},
			{Methods: catalogWrites, PathPrefix: "/desarrolladores", Requirement: RequireRole, Roles: []models.Role{models.RoleAdmin}},
			{Methods: []string{"*"}, PathPrefix: "/usuarios", Requirement: RequireRole, Roles: []models.Role{models.RoleAdmin}},
		},
	}
}

// IsAllowed evaluates the request against the rule table. The first rule
// whose method and path both match decides the outcome; later rules are
// never consulted.
func (p *AccessPolicy) IsAllowed(method, path string, sc models.SecurityContext) Decision {
	for _, rule := range p.rules {
		if !rule.matches(method, path) {
			continue
		}
		return rule.decide(sc)
	}

	// no rule matched: authenticated users only
	if !sc.IsAuthenticated {
		return DecisionUnauthenticated
	}
	return DecisionAllow
}

func (r AccessRule) matches(method, path string) bool {
	if !r.matchesMethod(method) {
		return false
	}
	return path == r.PathPrefix || strings.HasPrefix(path, r.PathPrefix+"/")
}

func (r AccessRule) matchesMethod(method string) bool {
	for _, m := range r.Methods {
		if m == "*" || m == method {
			return true
		}
	}
	return false
}

func (r AccessRule) decide(sc models.SecurityContext) Decision {
	switch r.Requirement {
	case RequirePublic:
		return DecisionAllow
	case RequireAuthenticated:
		if !sc.IsAuthenticated {
			return DecisionUnauthenticated
		}
		return DecisionAllow
	case RequireRole:
		if !sc.IsAuthenticated {
			return DecisionUnauthenticated
		}
		for _, role := range r.Roles {
			if sc.HasRole(role) {
				return DecisionAllow
			}
		}
		return DecisionForbidden
	default:
		return DecisionForbidden
	}
}
