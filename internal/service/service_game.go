package service

import (
	"context"
	"fmt"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/models"
)

// gameService is the concrete implementation of GameService.
type gameService struct {
	gameRepository      store.GameRepository
	genreRepository     store.GenreRepository
	developerRepository store.DeveloperRepository
	idGenerator         IDGenerator
	logger              *logger.Logger
}

// NewGameService constructs a GameService wired to the given repositories.
func NewGameService(
	gameRepository store.GameRepository,
	genreRepository store.GenreRepository,
	developerRepository store.DeveloperRepository,
	idGenerator IDGenerator,
	logger *logger.Logger,
) GameService {
	return &gameService{
		gameRepository:      gameRepository,
		genreRepository:     genreRepository,
		developerRepository: developerRepository,
		idGenerator:         idGenerator,
		logger:              logger,
	}
}

// Create persists a new game after resolving its genre and developer
// references, so a dangling reference fails with the specific not-found
// error rather than a bare constraint violation.
func (s *gameService) Create(ctx context.Context, game models.Game) (models.Game, error) {
	log := logger.FromContext(ctx)

	if game.Title == "" || game.GenreID == "" || game.DeveloperID == "" || game.Platform == "" || game.ReleaseDate.IsZero() || game.PEGIRating == "" {
		log.Error().Msg("invalid game data provided")
		return models.Game{}, ErrInvalidDataProvided
	}

	if err := s.resolveReferences(ctx, game); err != nil {
		return models.Game{}, err
	}

	game.ID = s.idGenerator.Generate()

	created, err := s.gameRepository.CreateGame(ctx, game)
	if err != nil {
		log.Err(err).Str("title", game.Title).Msg("game creation ended with error")
		return models.Game{}, fmt.Errorf("game creation ended with error: %w", err)
	}

	return created, nil
}

func (s *gameService) GetAll(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	games, err := s.gameRepository.GetAllGames(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("game listing failed: %w", err)
	}

	return games, nil
}

func (s *gameService) GetByID(ctx context.Context, id string) (models.Game, error) {
	game, err := s.gameRepository.FindGameByID(ctx, id)
	if err != nil {
		return models.Game{}, fmt.Errorf("game lookup failed: %w", err)
	}

	return game, nil
}

// Update rewrites a game record after resolving its references.
func (s *gameService) Update(ctx context.Context, game models.Game) (models.Game, error) {
	log := logger.FromContext(ctx)

	if game.ID == "" || game.Title == "" || game.GenreID == "" || game.DeveloperID == "" {
		log.Error().Msg("invalid game data provided")
		return models.Game{}, ErrInvalidDataProvided
	}

	if err := s.resolveReferences(ctx, game); err != nil {
		return models.Game{}, err
	}

	updated, err := s.gameRepository.UpdateGame(ctx, game)
	if err != nil {
		log.Err(err).Str("id", game.ID).Msg("game update ended with error")
		return models.Game{}, fmt.Errorf("game update ended with error: %w", err)
	}

	return updated, nil
}

func (s *gameService) Delete(ctx context.Context, id string) error {
	if err := s.gameRepository.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("game deletion failed: %w", err)
	}

	return nil
}

// resolveReferences confirms that the game's genre and developer exist,
// surfacing store.ErrGenreNotFound / store.ErrDeveloperNotFound.
func (s *gameService) resolveReferences(ctx context.Context, game models.Game) error {
	if _, err := s.genreRepository.FindGenreByID(ctx, game.GenreID); err != nil {
		return fmt.Errorf("game genre lookup failed: %w", err)
	}
	if _, err := s.developerRepository.FindDeveloperByID(ctx, game.DeveloperID); err != nil {
		return fmt.Errorf("game developer lookup failed: %w", err)
	}

	return nil
}
