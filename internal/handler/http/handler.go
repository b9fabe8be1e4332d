package http

import (
	"accountgate/internal/logger"
	"accountgate/internal/service"
)

type Handler struct {
	services *service.Services

	// filesDir is the directory served by the file streaming endpoint.
	// When empty the endpoint responds with 404 for every name.
	filesDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, filesDir string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		filesDir: filesDir,
		logger:   logger,
	}
}
