package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/go-resty/resty/v2"
)

const queryDateLayout = "2006-01-02"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("func", "httpServerAdapter.OnAfterResponse").
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("took", resp.Time()).
			Msg("server responded")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.acceptToken(resp, user)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.acceptToken(resp, user)
}

func (h *httpServerAdapter) acceptToken(resp *resty.Response, user models.User) (models.User, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("parse bearer token: %w", err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)

	return models.User{UserID: userID, Login: user.Login}, nil
}

// InferNutrients implements [ServerAdapter]. POST /api/nutrient-inference.
func (h *httpServerAdapter) InferNutrients(ctx context.Context, imageURL string) (models.InferenceResult, error) {
	var result models.InferenceResult

	resp, err := h.authedRequest(ctx).
		SetBody(models.NutrientInferenceRequest{ImageURL: imageURL}).
		SetResult(&result).
		Post("/api/nutrient-inference")
	if err != nil {
		return models.InferenceResult{}, fmt.Errorf("nutrient inference request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InferenceResult{}, err
	}

	return result, nil
}

// CreateEntry implements [ServerAdapter]. POST /api/entries.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, req models.FoodEntryRequest) (models.FoodEntry, error) {
	var entry models.FoodEntry

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&entry).
		Post("/api/entries")
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FoodEntry{}, err
	}

	return entry, nil
}

// UpdateEntry implements [ServerAdapter]. PUT /api/entries/{id}.
func (h *httpServerAdapter) UpdateEntry(ctx context.Context, id int64, req models.FoodEntryRequest) (models.FoodEntry, error) {
	var entry models.FoodEntry

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		SetResult(&entry).
		Put("/api/entries/{id}")
	if err != nil {
		return models.FoodEntry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FoodEntry{}, err
	}

	return entry, nil
}

// ListEntries implements [ServerAdapter]. GET /api/entries?from=&to=&tz=.
func (h *httpServerAdapter) ListEntries(ctx context.Context, from, to time.Time) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"from": from.Format(queryDateLayout),
			"to":   to.In(from.Location()).Format(queryDateLayout),
			"tz":   utils.LocationName(from),
		}).
		SetResult(&entries).
		Get("/api/entries")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.FoodEntry{}
	}
	return entries, nil
}

// DeleteEntry implements [ServerAdapter]. DELETE /api/entries/{id}.
func (h *httpServerAdapter) DeleteEntry(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/entries/{id}")
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

// DailySummary implements [ServerAdapter]. GET /api/summary/daily?date=&tz=.
func (h *httpServerAdapter) DailySummary(ctx context.Context, day time.Time) (models.DailySummary, error) {
	var summary models.DailySummary

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"date": day.Format(queryDateLayout),
			"tz":   utils.LocationName(day),
		}).
		SetResult(&summary).
		Get("/api/summary/daily")
	if err != nil {
		return models.DailySummary{}, fmt.Errorf("daily summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DailySummary{}, err
	}

	return summary, nil
}

// WeeklySummary implements [ServerAdapter]. GET /api/summary/weekly?end=&tz=.
func (h *httpServerAdapter) WeeklySummary(ctx context.Context, endDay time.Time) (models.WeeklySummary, error) {
	var summary models.WeeklySummary

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"end": endDay.Format(queryDateLayout),
			"tz":  utils.LocationName(endDay),
		}).
		SetResult(&summary).
		Get("/api/summary/weekly")
	if err != nil {
		return models.WeeklySummary{}, fmt.Errorf("weekly summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WeeklySummary{}, err
	}

	return summary, nil
}

// GetGoals implements [ServerAdapter]. GET /api/settings/goals.
func (h *httpServerAdapter) GetGoals(ctx context.Context) (models.DailyIntakeGoals, error) {
	var goals models.DailyIntakeGoals

	resp, err := h.authedRequest(ctx).
		SetResult(&goals).
		Get("/api/settings/goals")
	if err != nil {
		return models.DailyIntakeGoals{}, fmt.Errorf("get goals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DailyIntakeGoals{}, err
	}

	return goals, nil
}

// UpdateGoals implements [ServerAdapter]. PUT /api/settings/goals.
func (h *httpServerAdapter) UpdateGoals(ctx context.Context, goals models.DailyIntakeGoals) (models.DailyIntakeGoals, error) {
	var saved models.DailyIntakeGoals

	resp, err := h.authedRequest(ctx).
		SetBody(goals).
		SetResult(&saved).
		Put("/api/settings/goals")
	if err != nil {
		return models.DailyIntakeGoals{}, fmt.Errorf("update goals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DailyIntakeGoals{}, err
	}

	return saved, nil
}

// GetServerVersion implements [ServerAdapter]. GET /api/version/.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
