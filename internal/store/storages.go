package store

import (
	"context"
	"fmt"

	"github.com/pvaldera/go-game-catalog/internal/config"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/migrations"
)

// Storages aggregates every repository backed by the shared database
// connection. It is the single dependency the service layer takes on the
// persistence package.
type Storages struct {
	UserRepository      UserRepository
	GenreRepository     GenreRepository
	DeveloperRepository DeveloperRepository
	GameRepository      GameRepository
	RatingRepository    RatingRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all repositories onto the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		GenreRepository:     NewGenreRepository(db, log),
		DeveloperRepository: NewDeveloperRepository(db, log),
		GameRepository:      NewGameRepository(db, log),
		RatingRepository:    NewRatingRepository(db, log),
	}, nil
}
