package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"github.com/pvaldera/go-game-catalog/models"
)

// AuthService owns the credential check and token issuance flow and the
// per-request token verification used by the authorization filter.
type AuthService interface {
	// Register creates an account with the lowest-privilege role. The role
	// can never be chosen by the caller.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies credentials and returns the matching user. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed, time-bounded JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate validates a raw token string and resolves the subject
	// against the credential store, so that tokens of deleted accounts are
	// rejected. Every failure kind surfaces as ErrTokenInvalid.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// RatingService enforces the one-rating-per-user-per-game invariant.
type RatingService interface {
	// Submit records a rating for (userID, req.GameID). It resolves both
	// references, performs an advisory duplicate check, re-validates the
	// score, and persists; the database unique constraint remains the
	// authoritative duplicate guard under concurrency.
	Submit(ctx context.Context, userID string, req models.RatingRequest) (models.Rating, error)

	// GetByGame lists the ratings recorded for a game.
	GetByGame(ctx context.Context, gameID string) ([]models.Rating, error)
}

type GenreService interface {
	Create(ctx context.Context, genre models.Genre) (models.Genre, error)
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id string) (models.Genre, error)
	Update(ctx context.Context, genre models.Genre) (models.Genre, error)
	Delete(ctx context.Context, id string) error
}

type DeveloperService interface {
	Create(ctx context.Context, developer models.Developer) (models.Developer, error)
	GetAll(ctx context.Context) ([]models.Developer, error)
	GetByID(ctx context.Context, id string) (models.Developer, error)
	Update(ctx context.Context, developer models.Developer) (models.Developer, error)
	Delete(ctx context.Context, id string) error
}

type GameService interface {
	Create(ctx context.Context, game models.Game) (models.Game, error)
	GetAll(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	GetByID(ctx context.Context, id string) (models.Game, error)
	Update(ctx context.Context, game models.Game) (models.Game, error)
	Delete(ctx context.Context, id string) error
}

// UserService is the admin-only account management surface.
type UserService interface {
	// Create provisions an account on behalf of an administrator. The role
	// comes from the request; an empty password falls back to a default.
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	Delete(ctx context.Context, id string) error
}

// IDGenerator produces identifiers for newly created records.
type IDGenerator interface {
	Generate() string
}
