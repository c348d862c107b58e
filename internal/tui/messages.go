package tui

import (
	"time"

	"github.com/MKhiriev/go-nutri-track/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login and register pages.
type LoginResult struct {
	Session models.Session
	Err     error
}

type dayLoadedMsg struct {
	day     time.Time
	entries []models.FoodEntry
	cached  bool
	err     error
}

type summaryLoadedMsg struct {
	day     time.Time
	summary models.DailySummary
	err     error
}

type weeklyLoadedMsg struct {
	summary models.WeeklySummary
	err     error
}

type goalsLoadedMsg struct {
	goals models.DailyIntakeGoals
	err   error
}

type goalsSavedMsg struct {
	goals models.DailyIntakeGoals
	err   error
}

type inferenceDoneMsg struct {
	gen       uint64
	result    models.InferenceResult
	imageData []byte
	photoPath string
	err       error
}

type entrySavedMsg struct {
	entry   models.FoodEntry
	editing bool
	err     error
}

type entryDeletedMsg struct {
	err error
}

type clearStatusMsg struct{}
