package service

import (
	"github.com/pvaldera/go-game-catalog/internal/config"
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/store"
	"github.com/pvaldera/go-game-catalog/internal/utils"
)

type Services struct {
	AuthService      AuthService
	RatingService    RatingService
	GameService      GameService
	GenreService     GenreService
	DeveloperService DeveloperService
	UserService      UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	idGenerator := utils.NewUUIDGenerator()

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, idGenerator, cfg.App, logger),
		RatingService:    NewRatingService(storages.RatingRepository, storages.UserRepository, storages.GameRepository, idGenerator, logger),
		GameService:      NewGameService(storages.GameRepository, storages.GenreRepository, storages.DeveloperRepository, idGenerator, logger),
		GenreService:     NewGenreService(storages.GenreRepository, idGenerator, logger),
		DeveloperService: NewDeveloperService(storages.DeveloperRepository, idGenerator, logger),
		UserService:      NewUserService(storages.UserRepository, idGenerator, logger),
	}
}
