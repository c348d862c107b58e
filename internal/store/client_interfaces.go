package store

import (
	"context"

	"github.com/MKhiriev/go-nutri-track/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the single logged-in session of this device.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrLocalSessionNotFound] when nobody is logged in.
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}

// EntryCacheRepository keeps the last fetched entries per day so the client
// can render a day list while offline.
type EntryCacheRepository interface {
	// ReplaceDay atomically swaps all cached entries of the day for entries.
	ReplaceDay(ctx context.Context, userID int64, day string, entries []models.FoodEntry) error
	ListDay(ctx context.Context, userID int64, day string) ([]models.FoodEntry, error)
	// Clear drops every cached entry of the user.
	Clear(ctx context.Context, userID int64) error
}
