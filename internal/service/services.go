package service

import (
	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/crypto"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/store"
)

type Services struct {
	AuthService          AuthService
	SecuredEntityService SecuredEntityService
	AccessService        AccessService
	StatsService         StatsService
	UserAgentService     UserAgentService
	AppInfoService       AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	deriver := crypto.NewPasswordDeriver(cfg.App.SecretKey)

	securedEntityService := NewSecuredEntityValidationService().Wrap(
		NewSecuredEntityService(storages.SecuredEntityRepository, storages.AccessLogRepository, storages.BlobStorage, deriver, cfg, logger),
	)

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		SecuredEntityService: securedEntityService,
		AccessService:        NewAccessService(storages.SecuredEntityRepository, storages.AccessLogRepository, storages.BlobStorage, deriver, cfg.App, logger),
		StatsService:         NewStatsService(storages.AccessLogRepository, logger),
		UserAgentService:     NewUserAgentService(storages.UserAgentRepository, logger),
		AppInfoService:       appInfoService,
	}, nil
}
