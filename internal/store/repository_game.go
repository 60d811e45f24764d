package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/models"
)

// gameRepository is the PostgreSQL-backed implementation of [GameRepository].
type gameRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGameRepository constructs a [GameRepository] backed by the provided
// database connection and logger.
func NewGameRepository(db *DB, logger *logger.Logger) GameRepository {
	logger.Debug().Msg("creating game repository")
	return &gameRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGame persists a new game. A dangling genre or developer reference
// surfaces as [ErrGameReferenceMissing].
func (r *gameRepository) CreateGame(ctx context.Context, game models.Game) (models.Game, error) {
	log := logger.FromContext(ctx)

	var created models.Game
	row := r.db.QueryRowContext(ctx, createGame,
		game.ID, game.Title, game.DeveloperID, game.GenreID, game.Platform, game.ReleaseDate, game.PEGIRating, game.ImageURL)

	err := row.Scan(&created.ID, &created.Title, &created.DeveloperID, &created.GenreID,
		&created.Platform, &created.ReleaseDate, &created.PEGIRating, &created.ImageURL)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Game{}, ErrGameReferenceMissing
		}
		log.Err(err).Str("func", "*gameRepository.CreateGame").Msg("error: insert failed")
		return models.Game{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *gameRepository) FindGameByID(ctx context.Context, id string) (models.Game, error) {
	log := logger.FromContext(ctx)

	var found models.Game
	err := r.db.QueryRowContext(ctx, findGameByID, id).
		Scan(&found.ID, &found.Title, &found.DeveloperID, &found.GenreID,
			&found.Platform, &found.ReleaseDate, &found.PEGIRating, &found.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		log.Err(err).Str("func", "*gameRepository.FindGameByID").Msg("error: query failed")
		return models.Game{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllGames lists the catalog, optionally narrowed by filter. The query is
// built dynamically with squirrel (see [buildSelectGamesQuery]).
func (r *gameRepository) GetAllGames(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGamesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.GetAllGames").Msg("error: building query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.GetAllGames").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		err := rows.Scan(&g.ID, &g.Title, &g.DeveloperID, &g.GenreID,
			&g.Platform, &g.ReleaseDate, &g.PEGIRating, &g.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return games, nil
}

// UpdateGame rewrites a game record. An absent record surfaces as
// [ErrGameNotFound], a dangling reference as [ErrGameReferenceMissing].
func (r *gameRepository) UpdateGame(ctx context.Context, game models.Game) (models.Game, error) {
	log := logger.FromContext(ctx)

	var updated models.Game
	row := r.db.QueryRowContext(ctx, updateGame,
		game.ID, game.Title, game.DeveloperID, game.GenreID, game.Platform, game.ReleaseDate, game.PEGIRating, game.ImageURL)

	err := row.Scan(&updated.ID, &updated.Title, &updated.DeveloperID, &updated.GenreID,
		&updated.Platform, &updated.ReleaseDate, &updated.PEGIRating, &updated.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Game{}, ErrGameNotFound
		}
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Game{}, ErrGameReferenceMissing
		}
		log.Err(err).Str("func", "*gameRepository.UpdateGame").Msg("error: update failed")
		return models.Game{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *gameRepository) DeleteGame(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteGame, id)
	if err != nil {
		log.Err(err).Str("func", "*gameRepository.DeleteGame").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}

	return nil
}
