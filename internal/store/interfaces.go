package store

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"github.com/pvaldera/go-game-catalog/models"
)

// UserRepository is the credential store contract consumed by the
// authentication service and the user-management endpoints.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type GenreRepository interface {
	CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error)
	FindGenreByID(ctx context.Context, id string) (models.Genre, error)
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
	ExistsGenreByName(ctx context.Context, name string) (bool, error)
	UpdateGenre(ctx context.Context, genre models.Genre) (models.Genre, error)
	DeleteGenre(ctx context.Context, id string) error
}

type DeveloperRepository interface {
	CreateDeveloper(ctx context.Context, developer models.Developer) (models.Developer, error)
	FindDeveloperByID(ctx context.Context, id string) (models.Developer, error)
	GetAllDevelopers(ctx context.Context) ([]models.Developer, error)
	ExistsDeveloperByStudioName(ctx context.Context, studioName string) (bool, error)
	UpdateDeveloper(ctx context.Context, developer models.Developer) (models.Developer, error)
	DeleteDeveloper(ctx context.Context, id string) error
}

type GameRepository interface {
	CreateGame(ctx context.Context, game models.Game) (models.Game, error)
	FindGameByID(ctx context.Context, id string) (models.Game, error)
	GetAllGames(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	UpdateGame(ctx context.Context, game models.Game) (models.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// RatingRepository is the persistence contract for ratings. CreateRating
// fails with [ErrRatingExists] when the (UserID, GameID) pair already exists;
// this database-level signal is the authoritative uniqueness guard.
type RatingRepository interface {
	CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error)
	ExistsRatingByUserAndGame(ctx context.Context, userID, gameID string) (bool, error)
	FindRatingsByGame(ctx context.Context, gameID string) ([]models.Rating, error)
}
