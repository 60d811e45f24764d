package http

import (
	"github.com/pvaldera/go-game-catalog/internal/logger"
	"github.com/pvaldera/go-game-catalog/internal/service"
)

type Handler struct {
	services *service.Services
	policy   *AccessPolicy

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		policy:   NewAccessPolicy(),
		logger:   logger,
	}
}
