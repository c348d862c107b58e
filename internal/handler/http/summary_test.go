package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDailySummary(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})
	want := models.DailySummary{Date: "2026-05-04", EntryCount: 3, Totals: models.NutrientTotals{Calories: 1500}}

	m.summary.EXPECT().
		Daily(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, day time.Time, loc *time.Location) (models.DailySummary, error) {
			assert.Equal(t, "Europe/Berlin", loc.String())
			assert.Equal(t, "2026-05-04", day.Format(queryDateLayout))
			return want, nil
		})

	rec := doRequest(t, router, http.MethodGet, "/api/summary/daily?date=2026-05-04&tz=Europe/Berlin", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.DailySummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestDailySummary_InvalidDate(t *testing.T) {
	router, _ := newTestRouter(t, config.Server{})

	rec := doRequest(t, router, http.MethodGet, "/api/summary/daily?date=yesterday", nil, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeeklySummary(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.summary.EXPECT().
		Weekly(gomock.Any(), testUserID, gomock.Any(), time.UTC).
		Return(models.WeeklySummary{From: "2026-04-28", To: "2026-05-04"}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/summary/weekly?end=2026-05-04", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"from":"2026-04-28"`)
}

func TestWeeklySummary_RepositoryError(t *testing.T) {
	router, m := newTestRouter(t, config.Server{})

	m.summary.EXPECT().Weekly(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.WeeklySummary{}, fmt.Errorf("%w: %w", service.ErrRepository, store.ErrScanningRows))

	rec := doRequest(t, router, http.MethodGet, "/api/summary/weekly", nil, true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, decodeErrorResponse(t, rec).Message)
}
