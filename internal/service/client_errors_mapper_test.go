package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"invalid entry", adapter.NewResponseError(http.StatusBadRequest, app.MsgInvalidFoodEntry, "negative"), ErrValidation},
		{"invalid goals", adapter.NewResponseError(http.StatusBadRequest, app.MsgInvalidGoals, ""), ErrValidation},
		{"invalid image url", adapter.NewResponseError(http.StatusBadRequest, app.MsgInvalidImageURL, ""), ErrInvalidImageURL},
		{"bad json", adapter.NewResponseError(http.StatusBadRequest, app.MsgInvalidDataProvided, ""), ErrInvalidDataProvided},
		{"too large", adapter.NewResponseError(http.StatusRequestEntityTooLarge, app.MsgPayloadTooLarge, ""), ErrValidation},
		{"wrong password", adapter.NewResponseError(http.StatusUnauthorized, app.MsgInvalidLoginPassword, ""), ErrWrongPassword},
		{"expired token", adapter.NewResponseError(http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, ""), ErrTokenIsExpiredOrInvalid},
		{"entry not found", adapter.NewResponseError(http.StatusNotFound, app.MsgFoodEntryNotFound, ""), store.ErrFoodEntryNotFound},
		{"login taken", adapter.NewResponseError(http.StatusConflict, app.MsgLoginAlreadyExists, ""), store.ErrLoginAlreadyExists},
		{"upload", adapter.NewResponseError(http.StatusBadGateway, app.MsgUploadFailed, ""), ErrUpload},
		{"server", adapter.NewResponseError(http.StatusInternalServerError, app.MsgInternalServerError, ""), ErrRepository},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in, "transport error stays in the chain")
		})
	}
}

func TestMapAdapterError_Passthrough(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	netErr := errors.New("connection reset")
	assert.Same(t, netErr, mapAdapterError(netErr))

	unknown := adapter.NewResponseError(http.StatusNotFound, "404 page not found", "")
	assert.Equal(t, error(unknown), mapAdapterError(unknown))
	assert.ErrorIs(t, mapAdapterError(unknown), adapter.ErrNotFound)
}
