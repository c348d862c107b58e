package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found inside repository error", fmt.Errorf("%w: %w", service.ErrRepository, store.ErrFoodEntryNotFound), http.StatusNotFound},
		{"repository", fmt.Errorf("%w: %w", service.ErrRepository, store.ErrExecutingQuery), http.StatusInternalServerError},
		{"validation", fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrNegativeNutrient), http.StatusBadRequest},
		{"upload", service.ErrUpload, http.StatusBadGateway},
		{"conflict", store.ErrLoginAlreadyExists, http.StatusConflict},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestLookupError_ValidationMessages(t *testing.T) {
	goals := lookupError(fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrNonPositiveGoal))
	entry := lookupError(fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrDescriptionTooLong))

	assert.NotEqual(t, goals.message, entry.message)
	assert.True(t, goals.detail)
}
