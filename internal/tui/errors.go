// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
)

// ErrUserQuit is returned by the login flow when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into a line that can be shown in the UI.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var inferErr *service.InferenceError
	if errors.As(err, &inferErr) {
		return inferErr.Message
	}

	switch {
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Your session has expired. Please log in again."
	case errors.Is(err, service.ErrWrongPassword), errors.Is(err, store.ErrNoUserWasFound):
		return "Wrong login or password."
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is already taken."
	case errors.Is(err, validators.ErrEmptyLogin), errors.Is(err, validators.ErrEmptyPassword):
		return "Login and password are required."
	case errors.Is(err, validators.ErrNonPositiveGoal):
		return "Every goal must be a positive number."
	case errors.Is(err, store.ErrFoodEntryNotFound):
		return "The entry no longer exists."
	case errors.Is(err, service.ErrUpload):
		return "The photo could not be uploaded. Try again without it or later."
	case errors.Is(err, service.ErrValidation):
		return err.Error()
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable."
	}

	return err.Error()
}

// isSessionExpired reports whether err means the user must log in again.
func isSessionExpired(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid)
}
