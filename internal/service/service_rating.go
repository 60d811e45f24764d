package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/models"
)

// ratingService is the concrete implementation of RatingService. It owns the
// one-rating-per-user-per-game invariant.
//
// The existence-check-then-insert sequence here is advisory: it rejects the
// common duplicate case before touching the insert path. Correctness under
// concurrent submissions does not depend on it; the (user_id, game_id)
// unique constraint enforced by the rating repository is authoritative, and a
// race lost between the check and the insert still surfaces as
// ErrDuplicateRating, never as a generic persistence error.
type ratingService struct {
	ratingRepository store.RatingRepository
	userRepository   store.UserRepository
	gameRepository   store.GameRepository
	idGenerator      IDGenerator
	logger           *logger.Logger
}

// NewRatingService constructs a RatingService wired to the given repositories.
func NewRatingService(
	ratingRepository store.RatingRepository,
	userRepository store.UserRepository,
	gameRepository store.GameRepository,
	idGenerator IDGenerator,
	logger *logger.Logger,
) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		userRepository:   userRepository,
		gameRepository:   gameRepository,
		idGenerator:      idGenerator,
		logger:           logger,
	}
}

// Submit records a rating for (userID, req.GameID).
//
// Failure modes, in check order:
//   - store.ErrNoUserWasFound / store.ErrGameNotFound if either reference is
//     absent.
//   - ErrDuplicateRating if the pair is already rated (advisory check or
//     constraint violation after a lost race).
//   - ErrInvalidScore if the score is outside [models.MinScore,
//     models.MaxScore]. The boundary layer is expected to have validated
//     this already; the guard re-checks because it carries the invariant.
func (s *ratingService) Submit(ctx context.Context, userID string, req models.RatingRequest) (models.Rating, error) {
	log := logger.FromContext(ctx)

	if userID == "" || req.GameID == "" {
		log.Error().Msg("invalid rating data provided")
		return models.Rating{}, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("rating user lookup failed")
		return models.Rating{}, fmt.Errorf("rating user lookup failed: %w", err)
	}

	if _, err := s.gameRepository.FindGameByID(ctx, req.GameID); err != nil {
		log.Err(err).Str("game_id", req.GameID).Msg("rating game lookup failed")
		return models.Rating{}, fmt.Errorf("rating game lookup failed: %w", err)
	}

	// Advisory fast path: reject the common duplicate before inserting.
	exists, err := s.ratingRepository.ExistsRatingByUserAndGame(ctx, userID, req.GameID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Str("game_id", req.GameID).Msg("rating existence check failed")
		return models.Rating{}, fmt.Errorf("rating existence check failed: %w", err)
	}
	if exists {
		return models.Rating{}, ErrDuplicateRating
	}

	rating := models.Rating{
		ID:      s.idGenerator.Generate(),
		UserID:  userID,
		GameID:  req.GameID,
		Score:   req.Score,
		Comment: req.Comment,
	}

	if !rating.ScoreInRange() {
		return models.Rating{}, ErrInvalidScore
	}

	created, err := s.ratingRepository.CreateRating(ctx, rating)
	if err != nil {
		if errors.Is(err, store.ErrRatingExists) {
			// Lost the race against a concurrent submission for the same
			// pair; the constraint caught it.
			return models.Rating{}, ErrDuplicateRating
		}
		log.Err(err).Str("user_id", userID).Str("game_id", req.GameID).Msg("rating creation ended with error")
		return models.Rating{}, fmt.Errorf("rating creation ended with error: %w", err)
	}

	return created, nil
}

// GetByGame lists the ratings recorded for a game. An unknown game yields
// store.ErrGameNotFound.
func (s *ratingService) GetByGame(ctx context.Context, gameID string) ([]models.Rating, error) {
	log := logger.FromContext(ctx)

	if _, err := s.gameRepository.FindGameByID(ctx, gameID); err != nil {
		log.Err(err).Str("game_id", gameID).Msg("rating game lookup failed")
		return nil, fmt.Errorf("rating game lookup failed: %w", err)
	}

	ratings, err := s.ratingRepository.FindRatingsByGame(ctx, gameID)
	if err != nil {
		log.Err(err).Str("game_id", gameID).Msg("rating listing failed")
		return nil, fmt.Errorf("rating listing failed: %w", err)
	}

	return ratings, nil
}
