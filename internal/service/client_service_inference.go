package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

const (
	msgNoImage          = "Select a photo first."
	msgUnsupportedImage = "The selected file is not a supported image."
	msgSessionExpired   = "Your session has expired. Please log in again."
	msgServerFailed     = "Could not estimate nutrients. Try again or enter the values manually."
	msgUnreachable      = "Could not reach the server. Check your connection and try again."
	msgCancelled        = "Nutrient estimation was cancelled."
)

type clientInferenceService struct {
	adapter      adapter.ServerAdapter
	preprocessor *imaging.Preprocessor
	logger       *logger.Logger
}

func NewClientInferenceService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientInferenceService {
	return &clientInferenceService{
		adapter:      serverAdapter,
		preprocessor: imaging.NewPreprocessor(),
		logger:       logger,
	}
}

func (s *clientInferenceService) InferNutrients(ctx context.Context, imageBytes []byte) (models.InferenceResult, error) {
	if len(imageBytes) == 0 {
		return models.InferenceResult{}, &InferenceError{Message: msgNoImage, Err: ErrValidation}
	}

	processed, err := s.preprocessor.Process(imageBytes)
	if err != nil {
		return models.InferenceResult{}, &InferenceError{Message: msgUnsupportedImage, Err: err}
	}

	result, err := s.adapter.InferNutrients(ctx, imaging.EncodeDataURI(imaging.MIMEType, processed))
	if err != nil {
		s.logger.Err(err).Str("func", "clientInferenceService.InferNutrients").Msg("inference request failed")
		return models.InferenceResult{}, &InferenceError{Message: inferenceMessage(ctx, err), Err: err}
	}

	return result, nil
}

func inferenceMessage(ctx context.Context, err error) string {
	var respErr *adapter.ResponseError

	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		return msgCancelled
	case errors.Is(err, adapter.ErrUnauthorized):
		return msgSessionExpired
	case errors.As(err, &respErr):
		if respErr.Detail != "" {
			return msgServerFailed + " (" + respErr.Message + ": " + respErr.Detail + ")"
		}
		return msgServerFailed + " (" + respErr.Message + ")"
	default:
		return msgUnreachable
	}
}
