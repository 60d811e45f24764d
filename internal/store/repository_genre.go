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

// genreRepository is the PostgreSQL-backed implementation of [GenreRepository].
type genreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewGenreRepository constructs a [GenreRepository] backed by the provided
// database connection and logger.
func NewGenreRepository(db *DB, logger *logger.Logger) GenreRepository {
	logger.Debug().Msg("creating genre repository")
	return &genreRepository{
		db:     db,
		logger: logger,
	}
}

// CreateGenre persists a new genre. A name collision surfaces as
// [ErrGenreNameExists].
func (r *genreRepository) CreateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	log := logger.FromContext(ctx)

	var created models.Genre
	row := r.db.QueryRowContext(ctx, createGenre, genre.ID, genre.Name)

	if err := row.Scan(&created.ID, &created.Name); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Genre{}, ErrGenreNameExists
		}
		log.Err(err).Str("func", "*genreRepository.CreateGenre").Msg("error: insert failed")
		return models.Genre{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *genreRepository) FindGenreByID(ctx context.Context, id string) (models.Genre, error) {
	log := logger.FromContext(ctx)

	var found models.Genre
	if err := r.db.QueryRowContext(ctx, findGenreByID, id).Scan(&found.ID, &found.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Genre{}, ErrGenreNotFound
		}
		log.Err(err).Str("func", "*genreRepository.FindGenreByID").Msg("error: query failed")
		return models.Genre{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *genreRepository) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllGenres)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.GetAllGenres").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return genres, nil
}

func (r *genreRepository) ExistsGenreByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsGenreByName, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// UpdateGenre renames a genre. An absent genre surfaces as [ErrGenreNotFound],
// a name collision as [ErrGenreNameExists].
func (r *genreRepository) UpdateGenre(ctx context.Context, genre models.Genre) (models.Genre, error) {
	log := logger.FromContext(ctx)

	var updated models.Genre
	row := r.db.QueryRowContext(ctx, updateGenre, genre.ID, genre.Name)

	if err := row.Scan(&updated.ID, &updated.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Genre{}, ErrGenreNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Genre{}, ErrGenreNameExists
		}
		log.Err(err).Str("func", "*genreRepository.UpdateGenre").Msg("error: update failed")
		return models.Genre{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *genreRepository) DeleteGenre(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteGenre, id)
	if err != nil {
		log.Err(err).Str("func", "*genreRepository.DeleteGenre").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrGenreNotFound
	}

	return nil
}
