package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// InferenceService turns a food photo into a nutrient estimate.
type InferenceService interface {
	InferNutrients(ctx context.Context, userID int64, req models.NutrientInferenceRequest) (models.InferenceResult, error)
}

// FoodEntryService manages the food entries of the user passed in.
type FoodEntryService interface {
	Save(ctx context.Context, userID int64, req models.FoodEntryRequest) (models.FoodEntry, error)
	Update(ctx context.Context, userID, id int64, req models.FoodEntryRequest) (models.FoodEntry, error)
	Get(ctx context.Context, userID, id int64) (models.FoodEntry, error)
	List(ctx context.Context, userID int64, dateRange models.DateRange) ([]models.FoodEntry, error)
	Delete(ctx context.Context, userID, id int64) error
}

type SummaryService interface {
	Daily(ctx context.Context, userID int64, day time.Time, loc *time.Location) (models.DailySummary, error)
	Weekly(ctx context.Context, userID int64, endDay time.Time, loc *time.Location) (models.WeeklySummary, error)
}

type SettingsService interface {
	GetGoals(ctx context.Context, userID int64) (models.DailyIntakeGoals, error)
	UpdateGoals(ctx context.Context, userID int64, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
