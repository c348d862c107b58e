package handler

import (
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/handler/http"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. images is served under /images/
// and may be nil when photos live in an external bucket.
func NewHandlers(services *service.Services, images store.BlobStorage, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, images, cfg, logger),
	}, nil
}
