package service

import (
	"context"

	"accountgate/internal/config"
	"accountgate/internal/logger"
)

// appInfoService is the concrete implementation of AppInfoService.
// It serves static application metadata captured at construction time.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs an AppInfoService from the application config.
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}
}

// GetAppVersion returns the configured semantic version of the running
// application, or "N/A" when no version was configured.
func (a *appInfoService) GetAppVersion(ctx context.Context) string {
	if a.version == "" {
		return "N/A"
	}

	return a.version
}
