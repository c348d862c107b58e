// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the nutri-track server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// server's message travels with the error as a [*ResponseError].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the nutri-track
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the bearer token is stored via
	// SetToken and the returned user carries the id taken from the token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with login and password. Same token handling as
	// Register.
	Login(ctx context.Context, user models.User) (models.User, error)

	// InferNutrients runs the two-stage estimation on the server for an image
	// given as a URL or data URI.
	InferNutrients(ctx context.Context, imageURL string) (models.InferenceResult, error)

	CreateEntry(ctx context.Context, req models.FoodEntryRequest) (models.FoodEntry, error)
	UpdateEntry(ctx context.Context, id int64, req models.FoodEntryRequest) (models.FoodEntry, error)

	// ListEntries returns the entries created between the calendar days of
	// from and to, both inclusive, in the time zone of from.
	ListEntries(ctx context.Context, from, to time.Time) ([]models.FoodEntry, error)
	DeleteEntry(ctx context.Context, id int64) error

	DailySummary(ctx context.Context, day time.Time) (models.DailySummary, error)
	WeeklySummary(ctx context.Context, endDay time.Time) (models.WeeklySummary, error)

	GetGoals(ctx context.Context) (models.DailyIntakeGoals, error)
	UpdateGoals(ctx context.Context, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error)

	// GetServerVersion returns the plain-text version reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
