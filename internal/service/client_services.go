package service

import (
	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
)

type ClientServices struct {
	AuthService      ClientAuthService
	InferenceService ClientInferenceService
	FoodService      ClientFoodService
	SummaryService   ClientSummaryService
	RefreshJob       ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	foodSvc := NewClientFoodService(serverAdapter, localStore.EntryCacheRepository, logger)

	return &ClientServices{
		AuthService:      NewClientAuthService(localStore, serverAdapter, logger),
		InferenceService: NewClientInferenceService(serverAdapter, logger),
		FoodService:      foodSvc,
		SummaryService:   NewClientSummaryService(serverAdapter),
		RefreshJob:       NewClientRefreshJob(foodSvc, logger),
	}
}
