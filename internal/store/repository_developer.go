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

// developerRepository is the PostgreSQL-backed implementation of
// [DeveloperRepository].
type developerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeveloperRepository constructs a [DeveloperRepository] backed by the
// provided database connection and logger.
func NewDeveloperRepository(db *DB, logger *logger.Logger) DeveloperRepository {
	logger.Debug().Msg("creating developer repository")
	return &developerRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDeveloper persists a new studio. A studio-name collision surfaces as
// [ErrStudioNameExists].
func (r *developerRepository) CreateDeveloper(ctx context.Context, developer models.Developer) (models.Developer, error) {
	log := logger.FromContext(ctx)

	var created models.Developer
	row := r.db.QueryRowContext(ctx, createDeveloper, developer.ID, developer.StudioName, developer.Country, developer.FoundedYear)

	if err := row.Scan(&created.ID, &created.StudioName, &created.Country, &created.FoundedYear); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Developer{}, ErrStudioNameExists
		}
		log.Err(err).Str("func", "*developerRepository.CreateDeveloper").Msg("error: insert failed")
		return models.Developer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *developerRepository) FindDeveloperByID(ctx context.Context, id string) (models.Developer, error) {
	log := logger.FromContext(ctx)

	var found models.Developer
	err := r.db.QueryRowContext(ctx, findDeveloperByID, id).
		Scan(&found.ID, &found.StudioName, &found.Country, &found.FoundedYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Developer{}, ErrDeveloperNotFound
		}
		log.Err(err).Str("func", "*developerRepository.FindDeveloperByID").Msg("error: query failed")
		return models.Developer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *developerRepository) GetAllDevelopers(ctx context.Context) ([]models.Developer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllDevelopers)
	if err != nil {
		log.Err(err).Str("func", "*developerRepository.GetAllDevelopers").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var developers []models.Developer
	for rows.Next() {
		var d models.Developer
		if err := rows.Scan(&d.ID, &d.StudioName, &d.Country, &d.FoundedYear); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		developers = append(developers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return developers, nil
}

func (r *developerRepository) ExistsDeveloperByStudioName(ctx context.Context, studioName string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsDeveloperByStudioName, studioName).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// UpdateDeveloper rewrites a studio record. An absent record surfaces as
// [ErrDeveloperNotFound], a studio-name collision as [ErrStudioNameExists].
func (r *developerRepository) UpdateDeveloper(ctx context.Context, developer models.Developer) (models.Developer, error) {
	log := logger.FromContext(ctx)

	var updated models.Developer
	row := r.db.QueryRowContext(ctx, updateDeveloper, developer.ID, developer.StudioName, developer.Country, developer.FoundedYear)

	if err := row.Scan(&updated.ID, &updated.StudioName, &updated.Country, &updated.FoundedYear); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Developer{}, ErrDeveloperNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Developer{}, ErrStudioNameExists
		}
		log.Err(err).Str("func", "*developerRepository.UpdateDeveloper").Msg("error: update failed")
		return models.Developer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *developerRepository) DeleteDeveloper(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteDeveloper, id)
	if err != nil {
		log.Err(err).Str("func", "*developerRepository.DeleteDeveloper").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrDeveloperNotFound
	}

	return nil
}
