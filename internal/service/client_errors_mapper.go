// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-nutri-track/internal/adapter"
	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain for its message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := responseMessage(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidFoodEntry, app.MsgInvalidGoals, app.MsgInvalidDateRange, app.MsgInvalidEntryID:
			return fmt.Errorf("%w: %w", ErrValidation, err)
		case app.MsgInvalidImageURL:
			return fmt.Errorf("%w: %w", ErrInvalidImageURL, err)
		case app.MsgInvalidDataProvided:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrValidation, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		case app.MsgTokenIsExpiredOrInvalid:
			return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgFoodEntryNotFound {
			return fmt.Errorf("%w: %w", store.ErrFoodEntryNotFound, err)
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return fmt.Errorf("%w: %w", store.ErrLoginAlreadyExists, err)
		}

	case errors.Is(err, adapter.ErrBadGateway):
		if msg == app.MsgUploadFailed {
			return fmt.Errorf("%w: %w", ErrUpload, err)
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrRepository, err)
	}

	return err
}

// responseMessage returns the "message" field the server sent, if any.
func responseMessage(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}
