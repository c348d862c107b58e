package store

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goalsRowColumns = []string{"calories", "protein", "carbs", "fat"}

func TestGetDailyIntakeGoals(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT calories, protein, carbs, fat FROM daily_intake_goals WHERE user_id = $1`)

	t.Run("saved goals", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(goalsRowColumns).AddRow(1800, 90, 200, 60))

		goals, err := repo.GetDailyIntakeGoals(testContext(), 5)
		require.NoError(t, err)
		assert.Equal(t, models.DailyIntakeGoals{Calories: 1800, Protein: 90, Carbs: 200, Fat: 60}, goals)
	})

	t.Run("defaults when nothing saved", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(goalsRowColumns))

		goals, err := repo.GetDailyIntakeGoals(testContext(), 5)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultDailyIntakeGoals(), goals)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(query).WillReturnError(errors.New("boom"))

		_, err := repo.GetDailyIntakeGoals(testContext(), 5)
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestUpsertDailyIntakeGoals(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingsRepository(newDBFromSQL(db), logger.Nop())
	goals := models.DailyIntakeGoals{Calories: 2200, Protein: 120, Carbs: 240, Fat: 70}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO daily_intake_goals`)).
		WithArgs(int64(5), 2200, 120, 240, 70).
		WillReturnRows(sqlmock.NewRows(goalsRowColumns).AddRow(2200, 120, 240, 70))

	saved, err := repo.UpsertDailyIntakeGoals(testContext(), 5, goals)
	require.NoError(t, err)
	assert.Equal(t, goals, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}
