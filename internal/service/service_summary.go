package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/models"
)

// weekDays is the length of a weekly summary.
const weekDays = 7

const dayLayout = "2006-01-02"

type summaryService struct {
	entries  store.FoodEntryRepository
	settings store.SettingsRepository
	logger   *logger.Logger
}

func NewSummaryService(entries store.FoodEntryRepository, settings store.SettingsRepository, logger *logger.Logger) SummaryService {
	return &summaryService{
		entries:  entries,
		settings: settings,
		logger:   logger,
	}
}

func (s *summaryService) Daily(ctx context.Context, userID int64, day time.Time, loc *time.Location) (models.DailySummary, error) {
	day = inLocation(day, loc)

	entries, err := s.entries.ListFoodEntries(ctx, userID, models.NewDayRange(day))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "summaryService.Daily").Int64("user_id", userID).Msg("failed to list entries")
		return models.DailySummary{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	goals, err := s.settings.GetDailyIntakeGoals(ctx, userID)
	if err != nil {
		return models.DailySummary{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	return models.DailySummary{
		Date:       day.Format(dayLayout),
		Totals:     utils.SumNutrients(entries),
		EntryCount: len(entries),
		Goals:      goals,
	}, nil
}

// Weekly covers the seven days ending at endDay. Days without entries count
// towards the average with zero.
func (s *summaryService) Weekly(ctx context.Context, userID int64, endDay time.Time, loc *time.Location) (models.WeeklySummary, error) {
	endDay = models.StartOfDay(inLocation(endDay, loc))
	startDay := endDay.AddDate(0, 0, -(weekDays - 1))

	entries, err := s.entries.ListFoodEntries(ctx, userID, models.DateRange{From: startDay, To: endDay})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "summaryService.Weekly").Int64("user_id", userID).Msg("failed to list entries")
		return models.WeeklySummary{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	goals, err := s.settings.GetDailyIntakeGoals(ctx, userID)
	if err != nil {
		return models.WeeklySummary{}, fmt.Errorf("%w: %w", ErrRepository, err)
	}

	byDay := make(map[string][]models.FoodEntry, weekDays)
	for _, entry := range entries {
		key := entry.CreatedAt.In(endDay.Location()).Format(dayLayout)
		byDay[key] = append(byDay[key], entry)
	}

	days := make([]models.DailySummary, 0, weekDays)
	var totals models.NutrientTotals
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		dayTotals := utils.SumNutrients(byDay[key])
		totals = totals.Add(dayTotals)

		days = append(days, models.DailySummary{
			Date:       key,
			Totals:     dayTotals,
			EntryCount: len(byDay[key]),
			Goals:      goals,
		})
	}

	return models.WeeklySummary{
		From:    startDay.Format(dayLayout),
		To:      endDay.Format(dayLayout),
		Days:    days,
		Totals:  totals,
		Average: utils.FloorMeanTotals(totals, weekDays),
		Goals:   goals,
	}, nil
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}
