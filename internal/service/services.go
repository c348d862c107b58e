package service

import (
	"github.com/MKhiriev/go-nutri-track/internal/cache"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/inference"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	InferenceService InferenceService
	FoodEntryService FoodEntryService
	SummaryService   SummaryService
	SettingsService  SettingsService
}

func NewServices(storages *store.Storages, provider inference.Provider, resultCache cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	foodEntries := NewFoodEntryValidationService().Wrap(
		NewFoodEntryService(storages.FoodEntryRepository, storages.BlobStorage, utils.NewUUIDGenerator(), logger),
	)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService:   appInfo,
		InferenceService: NewInferenceService(provider, resultCache, cfg.Inference, logger),
		FoodEntryService: foodEntries,
		SummaryService:   NewSummaryService(storages.FoodEntryRepository, storages.SettingsRepository, logger),
		SettingsService:  NewSettingsService(storages.SettingsRepository, logger),
	}, nil
}
