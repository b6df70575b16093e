package service

import (
	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/store"
	"github.com/MKhiriev/go-travel-journal/internal/validators"
	"github.com/MKhiriev/go-travel-journal/models"
)

type Services struct {
	AuthService        AuthService
	TravelStoryService TravelStoryService
	AssetService       AssetService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	assetService := NewAssetService(storages.AssetStorage, cfg.Storage.Files, logger)

	storyService := NewTravelStoryValidationService(validator).
		Wrap(NewTravelStoryService(storages.TravelStoryRepository, assetService, logger))

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		TravelStoryService: storyService,
		AssetService:       assetService,
		AppInfoService:     NewAppInfoService(buildInfo, logger),
	}
}
