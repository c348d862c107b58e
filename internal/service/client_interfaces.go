package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientInferenceService estimates nutrients for a photo through the server.
type ClientInferenceService interface {
	// InferNutrients preprocesses imageBytes, sends them as a data URI and
	// returns the estimate. Every failure is an [*InferenceError] carrying a
	// message that can be shown to the user as is.
	InferNutrients(ctx context.Context, imageBytes []byte) (models.InferenceResult, error)
}

// ClientFoodService manages the food entries of the logged-in user.
// Drafts are validated before any network call; an invalid draft yields
// [ErrValidation] and nothing is sent.
type ClientFoodService interface {
	// Save creates an entry. imageBytes may be nil. The local cache of the
	// entry's day is refreshed on success.
	Save(ctx context.Context, session models.Session, draft models.InferenceDraft, imageBytes []byte) (models.FoodEntry, error)

	// Update replaces the nutrient values and description of entry id. When
	// imageBytes is nil the stored photo is kept.
	Update(ctx context.Context, session models.Session, id int64, draft models.InferenceDraft, imageBytes []byte) (models.FoodEntry, error)

	// List fetches the entries of the calendar day of day (in its location)
	// and stores them in the local cache.
	List(ctx context.Context, session models.Session, day time.Time) ([]models.FoodEntry, error)

	// Cached returns what the last List stored for day without a network
	// call.
	Cached(ctx context.Context, session models.Session, day time.Time) ([]models.FoodEntry, error)

	Delete(ctx context.Context, session models.Session, id int64) error
}

// ClientAuthService registers and logs users in. The resulting
// [models.Session] is returned to the caller and kept in the local store so
// the next start can skip the login screen.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)

	// RestoreSession loads the saved session and re-arms the adapter with its
	// token. Returns store.ErrLocalSessionNotFound when nobody is logged in.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout forgets the token, the saved session and the cached entries.
	Logout(ctx context.Context, session models.Session) error
}

// ClientSummaryService reads aggregates and intake goals from the server.
type ClientSummaryService interface {
	Daily(ctx context.Context, day time.Time) (models.DailySummary, error)
	Weekly(ctx context.Context, endDay time.Time) (models.WeeklySummary, error)
	Goals(ctx context.Context) (models.DailyIntakeGoals, error)
	UpdateGoals(ctx context.Context, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error)
}

// ClientRefreshJob defines the contract for a background worker that
// periodically refreshes today's cached entries for the logged-in user.
type ClientRefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, session models.Session, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
