package service

import (
	"context"
	"fmt"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/models"
)

// genreService is the concrete implementation of GenreService.
type genreService struct {
	genreRepository store.GenreRepository
	idGenerator     IDGenerator
	logger          *logger.Logger
}

// NewGenreService constructs a GenreService wired to the given repository.
func NewGenreService(genreRepository store.GenreRepository, idGenerator IDGenerator, logger *logger.Logger) GenreService {
	return &genreService{
		genreRepository: genreRepository,
		idGenerator:     idGenerator,
		logger:          logger,
	}
}

// Create persists a new genre. The name-existence pre-check gives a clean
// error on the common collision; the unique index on genres.name remains the
// backstop.
func (s *genreService) Create(ctx context.Context, genre models.Genre) (models.Genre, error) {
	log := logger.FromContext(ctx)

	if genre.Name == "" {
		log.Error().Msg("invalid genre data provided")
		return models.Genre{}, ErrInvalidDataProvided
	}

	exists, err := s.genreRepository.ExistsGenreByName(ctx, genre.Name)
	if err != nil {
		log.Err(err).Str("name", genre.Name).Msg("genre existence check failed")
		return models.Genre{}, fmt.Errorf("genre existence check failed: %w", err)
	}
	if exists {
		return models.Genre{}, store.ErrGenreNameExists
	}

	genre.ID = s.idGenerator.Generate()

	created, err := s.genreRepository.CreateGenre(ctx, genre)
	if err != nil {
		log.Err(err).Str("name", genre.Name).Msg("genre creation ended with error")
		return models.Genre{}, fmt.Errorf("genre creation ended with error: %w", err)
	}

	return created, nil
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.genreRepository.GetAllGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("genre listing failed: %w", err)
	}

	return genres, nil
}

func (s *genreService) GetByID(ctx context.Context, id string) (models.Genre, error) {
	genre, err := s.genreRepository.FindGenreByID(ctx, id)
	if err != nil {
		return models.Genre{}, fmt.Errorf("genre lookup failed: %w", err)
	}

	return genre, nil
}

// Update renames a genre, rejecting a rename onto an already-used name.
func (s *genreService) Update(ctx context.Context, genre models.Genre) (models.Genre, error) {
	log := logger.FromContext(ctx)

	if genre.ID == "" || genre.Name == "" {
		log.Error().Msg("invalid genre data provided")
		return models.Genre{}, ErrInvalidDataProvided
	}

	current, err := s.genreRepository.FindGenreByID(ctx, genre.ID)
	if err != nil {
		return models.Genre{}, fmt.Errorf("genre lookup failed: %w", err)
	}

	if current.Name != genre.Name {
		exists, err := s.genreRepository.ExistsGenreByName(ctx, genre.Name)
		if err != nil {
			log.Err(err).Str("name", genre.Name).Msg("genre existence check failed")
			return models.Genre{}, fmt.Errorf("genre existence check failed: %w", err)
		}
		if exists {
			return models.Genre{}, store.ErrGenreNameExists
		}
	}

	updated, err := s.genreRepository.UpdateGenre(ctx, genre)
	if err != nil {
		log.Err(err).Str("id", genre.ID).Msg("genre update ended with error")
		return models.Genre{}, fmt.Errorf("genre update ended with error: %w", err)
	}

	return updated, nil
}

func (s *genreService) Delete(ctx context.Context, id string) error {
	if err := s.genreRepository.DeleteGenre(ctx, id); err != nil {
		return fmt.Errorf("genre deletion failed: %w", err)
	}

	return nil
}
