package service

import (
	"accountgate/internal/config"
	"accountgate/internal/logger"
	"accountgate/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, cfg.App, logger),
		AccountService: NewAccountService(storages.AccountRepository, storages.AuditRepository, cfg.App, logger),
		HealthService:  NewHealthService(storages.DB, logger),
		AppInfoService: NewAppInfoService(cfg.App, logger),
	}
}
