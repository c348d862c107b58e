package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── sessions ──

func TestLocalSessionRepository(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("save", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(saveSession)).
			WithArgs(int64(3), "john", "tok", now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.SaveSession(testContext(), models.Session{UserID: 3, Login: "john", Token: "tok", CreatedAt: now}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getSession)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "token", "created_at"}).AddRow(3, "john", "tok", now))

		session, err := repo.GetSession(testContext())
		require.NoError(t, err)
		assert.Equal(t, models.Session{UserID: 3, Login: "john", Token: "tok", CreatedAt: now}, session)
	})

	t.Run("get without session", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta(getSession)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "token", "created_at"}))

		_, err := repo.GetSession(testContext())
		require.ErrorIs(t, err, ErrLocalSessionNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalSessionRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectExec(regexp.QuoteMeta(deleteSession)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteSession(testContext()))
	})
}

// ── cached entries ──

func TestLocalEntryCacheRepository_ReplaceDay(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	entries := []models.FoodEntry{
		{ID: 1, UserID: 3, Calories: 100, Description: "a", CreatedAt: now, UpdatedAt: now},
		{ID: 2, UserID: 3, Calories: 200, Description: "b", ImageRef: "k", ImageURL: "u", CreatedAt: now, UpdatedAt: now},
	}

	t.Run("commits", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalEntryCacheRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteCachedDay)).WithArgs(int64(3), "2026-01-01").WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(regexp.QuoteMeta(insertCachedEntry)).
			WithArgs(int64(1), int64(3), "2026-01-01", 100, 0, 0, 0, "a", "", "", now, now).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertCachedEntry)).
			WithArgs(int64(2), int64(3), "2026-01-01", 200, 0, 0, 0, "b", "k", "u", now, now).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceDay(testContext(), 3, "2026-01-01", entries))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on insert failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalEntryCacheRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(deleteCachedDay)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(insertCachedEntry)).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.ReplaceDay(testContext(), 3, "2026-01-01", entries)
		require.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLocalEntryCacheRepository(newDBFromSQL(db), logger.Nop())

		mock.ExpectBegin().WillReturnError(errors.New("locked"))

		err := repo.ReplaceDay(testContext(), 3, "2026-01-01", entries)
		require.ErrorIs(t, err, ErrBeginningTransaction)
	})
}

func TestLocalEntryCacheRepository_ListDay(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLocalEntryCacheRepository(newDBFromSQL(db), logger.Nop())
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(listCachedDay)).
		WithArgs(int64(3), "2026-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "calories", "protein", "carbs", "fat", "description", "image_ref", "image_url", "created_at", "updated_at"}).
			AddRow(1, 3, 100, 1, 2, 3, "a", "", "", now, now))

	entries, err := repo.ListDay(testContext(), 3, "2026-01-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 100, entries[0].Calories)
}
