package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/models"
)

// developerService is the concrete implementation of DeveloperService.
type developerService struct {
	developerRepository store.DeveloperRepository
	idGenerator         IDGenerator
	logger              *logger.Logger
}

// NewDeveloperService constructs a DeveloperService wired to the given
// repository.
func NewDeveloperService(developerRepository store.DeveloperRepository, idGenerator IDGenerator, logger *logger.Logger) DeveloperService {
	return &developerService{
		developerRepository: developerRepository,
		idGenerator:         idGenerator,
		logger:              logger,
	}
}

// Create persists a new studio, rejecting duplicate studio names and
// founding years in the future.
func (s *developerService) Create(ctx context.Context, developer models.Developer) (models.Developer, error) {
	log := logger.FromContext(ctx)

	if developer.StudioName == "" || developer.Country == "" || developer.FoundedYear == 0 {
		log.Error().Msg("invalid developer data provided")
		return models.Developer{}, ErrInvalidDataProvided
	}
	if developer.FoundedYear > time.Now().Year() {
		return models.Developer{}, ErrInvalidDataProvided
	}

	exists, err := s.developerRepository.ExistsDeveloperByStudioName(ctx, developer.StudioName)
	if err != nil {
		log.Err(err).Str("studio_name", developer.StudioName).Msg("developer existence check failed")
		return models.Developer{}, fmt.Errorf("developer existence check failed: %w", err)
	}
	if exists {
		return models.Developer{}, store.ErrStudioNameExists
	}

	developer.ID = s.idGenerator.Generate()

	created, err := s.developerRepository.CreateDeveloper(ctx, developer)
	if err != nil {
		log.Err(err).Str("studio_name", developer.StudioName).Msg("developer creation ended with error")
		return models.Developer{}, fmt.Errorf("developer creation ended with error: %w", err)
	}

	return created, nil
}

func (s *developerService) GetAll(ctx context.Context) ([]models.Developer, error) {
	developers, err := s.developerRepository.GetAllDevelopers(ctx)
	if err != nil {
		return nil, fmt.Errorf("developer listing failed: %w", err)
	}

	return developers, nil
}

func (s *developerService) GetByID(ctx context.Context, id string) (models.Developer, error) {
	developer, err := s.developerRepository.FindDeveloperByID(ctx, id)
	if err != nil {
		return models.Developer{}, fmt.Errorf("developer lookup failed: %w", err)
	}

	return developer, nil
}

// Update rewrites a studio record, rejecting a rename onto an already-used
// studio name.
func (s *developerService) Update(ctx context.Context, developer models.Developer) (models.Developer, error) {
	log := logger.FromContext(ctx)

	if developer.ID == "" || developer.StudioName == "" || developer.Country == "" {
		log.Error().Msg("invalid developer data provided")
		return models.Developer{}, ErrInvalidDataProvided
	}

	current, err := s.developerRepository.FindDeveloperByID(ctx, developer.ID)
	if err != nil {
		return models.Developer{}, fmt.Errorf("developer lookup failed: %w", err)
	}

	if current.StudioName != developer.StudioName {
		exists, err := s.developerRepository.ExistsDeveloperByStudioName(ctx, developer.StudioName)
		if err != nil {
			log.Err(err).Str("studio_name", developer.StudioName).Msg("developer existence check failed")
			return models.Developer{}, fmt.Errorf("developer existence check failed: %w", err)
		}
		if exists {
			return models.Developer{}, store.ErrStudioNameExists
		}
	}

	updated, err := s.developerRepository.UpdateDeveloper(ctx, developer)
	if err != nil {
		log.Err(err).Str("id", developer.ID).Msg("developer update ended with error")
		return models.Developer{}, fmt.Errorf("developer update ended with error: %w", err)
	}

	return updated, nil
}

func (s *developerService) Delete(ctx context.Context, id string) error {
	if err := s.developerRepository.DeleteDeveloper(ctx, id); err != nil {
		return fmt.Errorf("developer deletion failed: %w", err)
	}

	return nil
}
