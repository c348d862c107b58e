package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── createEntry ─────────────────────────────────────────────────────────────

func TestCreateEntry_Created(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})
	req := models.FoodEntryRequest{Calories: 500, Protein: 30, Carbs: 40, Fat: 20, Description: "burrito"}
	created := models.FoodEntry{ID: 11, UserID: testUserID, Calories: 500, Protein: 30, Carbs: 40, Fat: 20, Description: "burrito"}

	m.entries.EXPECT().Save(gomock.Any(), testUserID, req).Return(created, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/entries", req, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.FoodEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "burrito", got.Description)
}

func TestCreateEntry_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantDetail bool
	}{
		{"negative", fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrNegativeNutrient), http.StatusBadRequest, app.MsgInvalidFoodEntry, true},
		{"upload", fmt.Errorf("%w: %w", service.ErrUpload, store.ErrUploadFailed), http.StatusBadGateway, app.MsgUploadFailed, false},
		{"repository", fmt.Errorf("%w: %w", service.ErrRepository, store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, config.Server{})
			m.entries.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.FoodEntry{}, tt.err)

			rec := doRequest(t, router, http.MethodPost, "/api/entries", models.FoodEntryRequest{}, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeErrorResponse(t, rec)
			assert.Equal(t, tt.wantMsg, resp.Message)
			if tt.wantDetail {
				assert.Equal(t, tt.err.Error(), resp.Error)
			} else {
				assert.Nil(t, resp.Error)
			}
		})
	}
}

func TestCreateEntry_BodyTooLarge(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{MaxBodyBytes: 64})

	body := `{"description":"` + strings.Repeat("a", 200) + `"}`
	rec := doRequest(t, router, http.MethodPost, "/api/entries", body, true)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgPayloadTooLarge, decodeErrorResponse(t, rec).Message)
}

// ── updateEntry / getEntry / deleteEntry ────────────────────────────────────

func TestUpdateEntry(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})
	req := models.FoodEntryRequest{Calories: 10}

	m.entries.EXPECT().Update(gomock.Any(), testUserID, int64(42), req).Return(models.FoodEntry{ID: 42, Calories: 10}, nil)

	rec := doRequest(t, router, http.MethodPut, "/api/entries/42", req, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateEntry_ForeignEntry(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.entries.EXPECT().Update(gomock.Any(), testUserID, int64(42), gomock.Any()).
		Return(models.FoodEntry{}, fmt.Errorf("%w: %w", service.ErrRepository, store.ErrFoodEntryNotFound))

	rec := doRequest(t, router, http.MethodPut, "/api/entries/42", models.FoodEntryRequest{}, true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgFoodEntryNotFound, decodeErrorResponse(t, rec).Message)
}

func TestEntryID_Invalid(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	for _, path := range []string{"/api/entries/abc", "/api/entries/0", "/api/entries/-3"} {
		rec := doRequest(t, router, http.MethodGet, path, nil, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, app.MsgInvalidEntryID, decodeErrorResponse(t, rec).Message)
	}
}

func TestGetEntry(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.entries.EXPECT().Get(gomock.Any(), testUserID, int64(5)).
		Return(models.FoodEntry{ID: 5, ImageURL: "https://cdn/x.jpg"}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/entries/5", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"image_url":"https://cdn/x.jpg"`)
}

func TestDeleteEntry(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.entries.EXPECT().Delete(gomock.Any(), testUserID, int64(5)).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/entries/5", nil, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// ── listEntries ─────────────────────────────────────────────────────────────

func TestListEntries_ParsesRangeInZone(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.entries.EXPECT().
		List(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, r models.DateRange) ([]models.FoodEntry, error) {
			assert.Equal(t, "2026-05-01", r.From.Format(queryDateLayout))
			assert.Equal(t, "2026-05-03", r.To.Format(queryDateLayout))
			_, offset := r.From.Zone()
			assert.Equal(t, -4*3600, offset)
			return nil, nil
		})

	rec := doRequest(t, router, http.MethodGet, "/api/entries?from=2026-05-01&to=2026-05-03&tz=-04:00", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListEntries_DefaultsToToday(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.entries.EXPECT().
		List(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, r models.DateRange) ([]models.FoodEntry, error) {
			assert.Equal(t, time.UTC, r.From.Location())
			assert.Equal(t, r.From, r.To)
			return []models.FoodEntry{{ID: 1}}, nil
		})

	rec := doRequest(t, router, http.MethodGet, "/api/entries", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListEntries_BadQuery(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	rec := doRequest(t, router, http.MethodGet, "/api/entries?from=05/01/2026", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDateRange, decodeErrorResponse(t, rec).Message)

	rec = doRequest(t, router, http.MethodGet, "/api/entries?tz=Mars/Olympus", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidTimeZone, decodeErrorResponse(t, rec).Message)
}

func TestListEntries_RangeTooLong(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.entries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrDateRangeTooLong))

	rec := doRequest(t, router, http.MethodGet, "/api/entries?from=2025-01-01&to=2026-01-01", nil, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDateRange, decodeErrorResponse(t, rec).Message)
}
