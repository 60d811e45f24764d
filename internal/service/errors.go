package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials merges "no such email" and "wrong password" so
	// that a login failure never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid is the single token-rejection error exposed past the
	// authentication boundary. Malformed, badly signed, expired and
	// stale-identity tokens all collapse into it; the distinction survives
	// only in server logs.
	ErrTokenInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrDuplicateRating is returned when the (user, game) pair has already
	// been rated, whether caught by the advisory check or by the database
	// unique constraint after a lost race.
	ErrDuplicateRating = errors.New("game already rated by this user")

	// ErrInvalidScore is returned when a rating score falls outside the
	// accepted range. The boundary layer validates this too; the guard
	// re-checks because it is the invariant-bearing component.
	ErrInvalidScore = errors.New("score must be between 1 and 10")
)
