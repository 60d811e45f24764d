package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/models"
)

// ratingRepository is the PostgreSQL-backed implementation of
// [RatingRepository]. The (user_id, game_id) unique constraint on the
// ratings table is the authoritative one-rating-per-user-per-game guard:
// under concurrent submissions for the same pair exactly one INSERT commits
// and all others fail with unique_violation, which this repository maps to
// [ErrRatingExists].
type ratingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRatingRepository constructs a [RatingRepository] backed by the provided
// database connection and logger.
func NewRatingRepository(db *DB, logger *logger.Logger) RatingRepository {
	logger.Debug().Msg("creating rating repository")
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateRating persists a new rating.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) becomes [ErrRatingExists]. This covers
//     races lost after the service layer's advisory existence check.
//   - PostgreSQL foreign_key_violation (23503) becomes [ErrRatingReferenceMissing].
//   - Any other driver-level error is wrapped as "unexpected DB error", with
//     retryability recorded in the log via the error classifier.
func (r *ratingRepository) CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	log := logger.FromContext(ctx)

	var created models.Rating
	row := r.db.QueryRowContext(ctx, createRating,
		rating.ID, rating.UserID, rating.GameID, rating.Score, rating.Comment)

	if err := row.Scan(&created.ID, &created.UserID, &created.GameID, &created.Score, &created.Comment); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Rating{}, ErrRatingExists
		case pgerrcode.ForeignKeyViolation:
			return models.Rating{}, ErrRatingReferenceMissing
		default:
			log.Err(err).
				Str("func", "*ratingRepository.CreateRating").
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("error: insert failed")
			return models.Rating{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ExistsRatingByUserAndGame reports whether the given (user, game) pair has
// already been rated. This is the advisory fast-path check; the unique
// constraint remains the correctness guarantee.
func (r *ratingRepository) ExistsRatingByUserAndGame(ctx context.Context, userID, gameID string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsRatingByUserAndGame, userID, gameID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*ratingRepository.ExistsRatingByUserAndGame").Msg("error: query failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// FindRatingsByGame returns every rating recorded for the given game.
func (r *ratingRepository) FindRatingsByGame(ctx context.Context, gameID string) ([]models.Rating, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findRatingsByGame, gameID)
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.FindRatingsByGame").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var rt models.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.GameID, &rt.Score, &rt.Comment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ratings, nil
}
