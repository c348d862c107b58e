package http

import (
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
)

// defaultMaxBodyBytes fits a preprocessed photo encoded as base64.
const defaultMaxBodyBytes = 8 << 20

type Handler struct {
	services *service.Services
	images   store.BlobStorage
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, images store.BlobStorage, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		images:   images,
		cfg:      cfg,
		logger:   logger,
	}
}
