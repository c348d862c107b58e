package store

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// FoodEntryRepository persists food entries. Every method is scoped to the
// owner passed in, so a foreign id behaves like a missing one.
type FoodEntryRepository interface {
	CreateFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error)
	// UpdateFoodEntry overwrites the nutrient fields and description of the
	// entry with entry.ID owned by entry.UserID. ImageRef is replaced only
	// when non-empty.
	UpdateFoodEntry(ctx context.Context, entry models.FoodEntry) (models.FoodEntry, error)
	GetFoodEntry(ctx context.Context, userID, id int64) (models.FoodEntry, error)
	// ListFoodEntries returns the entries created within the range ordered
	// by creation time ascending.
	ListFoodEntries(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error)
	DeleteFoodEntry(ctx context.Context, userID, id int64) (models.FoodEntry, error)
}

type SettingsRepository interface {
	// GetDailyIntakeGoals returns the saved goals or the defaults.
	GetDailyIntakeGoals(ctx context.Context, userID int64) (models.DailyIntakeGoals, error)
	UpsertDailyIntakeGoals(ctx context.Context, userID int64, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error)
}

// BlobStorage stores food photos.
type BlobStorage interface {
	// Upload writes data under key and returns the stored key.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Download returns the blob content or [ErrBlobNotFound].
	Download(ctx context.Context, key string) ([]byte, error)
	// PublicURL returns a URL the client can display the blob from.
	PublicURL(key string) string
	Delete(ctx context.Context, key string) error
}

// BlobKeyGenerator produces unique suffixes for blob keys.
type BlobKeyGenerator interface {
	Generate() string
}

// NewBlobKey returns "users/<userID>/<yyyy>/<mm>/<dd>/<unique>.jpg" for the
// UTC day of now.
func NewBlobKey(gen BlobKeyGenerator, userID int64, now time.Time) string {
	return "users/" + strconv.FormatInt(userID, 10) + "/" + now.UTC().Format("2006/01/02") + "/" + gen.Generate() + ".jpg"
}
