// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/cache"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/inference"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/mock"
	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testImageURL = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

// reply is one scripted answer of scriptedProvider.
type reply struct {
	text string
	err  error
}

// scriptedProvider answers each stage from its own script and counts calls.
// The last reply of a script repeats once the script is used up.
type scriptedProvider struct {
	mu          sync.Mutex
	description []reply
	nutrition   []reply
	calls       map[string]int
}

func (p *scriptedProvider) Complete(_ context.Context, req inference.CompletionRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.calls == nil {
		p.calls = map[string]int{}
	}

	stage, script := "description", p.description
	if req.JSONMode {
		stage, script = "nutrition", p.nutrition
	}

	n := p.calls[stage]
	p.calls[stage]++

	if len(script) == 0 {
		return "", errors.New("no scripted reply")
	}
	r := script[min(n, len(script)-1)]
	return r.text, r.err
}

func (p *scriptedProvider) count(stage string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[stage]
}

func testInferenceConfig() config.Inference {
	return config.Inference{
		Attempts:             3,
		Backoff:              time.Millisecond,
		DescriptionMaxTokens: 40,
		NutritionMaxTokens:   200,
		CacheTTL:             time.Hour,
	}
}

var errProviderDown = errors.New("provider down")

// ── InferNutrients: happy path ──────────────────────────────────────────────

func TestInferenceService_MergesDescriptionIntoNutrients(t *testing.T) {
	p := &scriptedProvider{
		description: []reply{{text: "  Banana, about 120 g \n"}},
		nutrition:   []reply{{text: "Here you go: {\"calories\": 105, \"protein\": 1.3, \"carbs\": 27, \"fat\": 0.4} Enjoy!"}},
	}
	svc := NewInferenceService(p, nil, testInferenceConfig(), logger.Nop())

	got, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})

	require.NoError(t, err)
	assert.Equal(t, models.InferenceResult{
		Calories:    105,
		Protein:     1.3,
		Carbs:       27,
		Fat:         0.4,
		Description: "Banana, about 120 g",
	}, got)
	assert.Equal(t, 1, p.count("description"))
	assert.Equal(t, 1, p.count("nutrition"))
}

func TestInferenceService_StageRequestsUseConfiguredBudgets(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)

	gomock.InOrder(
		provider.EXPECT().
			Complete(gomock.Any(), inference.DescriptionRequest("https://cdn.example.com/toast.jpg", 40)).
			Return("Toast with butter", nil),
		provider.EXPECT().
			Complete(gomock.Any(), inference.NutritionRequest("https://cdn.example.com/toast.jpg", 200)).
			Return(`{"calories":180,"protein":4,"carbs":20,"fat":9}`, nil),
	)

	svc := NewInferenceService(provider, nil, testInferenceConfig(), logger.Nop())
	got, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: "https://cdn.example.com/toast.jpg"})

	require.NoError(t, err)
	assert.Equal(t, "Toast with butter", got.Description)
	assert.Equal(t, 180.0, got.Calories)
}

// ── InferNutrients: retries ─────────────────────────────────────────────────

func TestInferenceService_RetriesUntilThirdAttemptSucceeds(t *testing.T) {
	p := &scriptedProvider{
		description: []reply{{text: "Salad"}},
		nutrition: []reply{
			{err: errProviderDown},
			{err: errProviderDown},
			{text: `{"calories":90,"protein":3,"carbs":8,"fat":5}`},
		},
	}
	svc := NewInferenceService(p, nil, testInferenceConfig(), logger.Nop())

	got, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})

	require.NoError(t, err)
	assert.Equal(t, 90.0, got.Calories)
	assert.Equal(t, 3, p.count("nutrition"))
}

func TestInferenceService_AllAttemptsFail(t *testing.T) {
	p := &scriptedProvider{
		description: []reply{{text: "Soup"}},
		nutrition:   []reply{{err: errProviderDown}},
	}
	svc := NewInferenceService(p, nil, testInferenceConfig(), logger.Nop())

	got, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInferenceTransport)
	assert.ErrorIs(t, err, errProviderDown)
	assert.Equal(t, models.InferenceResult{}, got)
	assert.Equal(t, 3, p.count("nutrition"))
}

func TestInferenceService_DescriptionFailureSkipsNutritionStage(t *testing.T) {
	p := &scriptedProvider{
		description: []reply{{err: errProviderDown}},
		nutrition:   []reply{{text: `{"calories":1,"protein":1,"carbs":1,"fat":1}`}},
	}
	svc := NewInferenceService(p, nil, testInferenceConfig(), logger.Nop())

	_, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})

	assert.ErrorIs(t, err, ErrInferenceTransport)
	assert.Equal(t, 3, p.count("description"))
	assert.Equal(t, 0, p.count("nutrition"))
}

func TestInferenceService_CancelledContextIsNotTransportError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := &scriptedProvider{description: []reply{{err: context.Canceled}}}
	cfg := testInferenceConfig()
	cfg.Backoff = time.Second

	svc := NewInferenceService(p, nil, cfg, logger.Nop())
	cancel()

	_, err := svc.InferNutrients(ctx, 1, models.NutrientInferenceRequest{ImageURL: testImageURL})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInferenceTransport)
}

// ── InferNutrients: output validation ───────────────────────────────────────

func TestInferenceService_OutputValidation(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "missing key", raw: `{"calories":100,"protein":2,"carbs":10}`, wantErr: inference.ErrIncompleteResponse},
		{name: "no json at all", raw: "I cannot tell what this is.", wantErr: inference.ErrInvalidFormat},
		{name: "not a number", raw: `{"calories":"lots","protein":2,"carbs":10,"fat":1}`, wantErr: inference.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &scriptedProvider{
				description: []reply{{text: "Rice"}},
				nutrition:   []reply{{text: tt.raw}},
			}
			svc := NewInferenceService(p, nil, testInferenceConfig(), logger.Nop())

			got, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, models.InferenceResult{}, got)
			assert.Equal(t, 1, p.count("nutrition"), "a malformed answer is not retried")
		})
	}
}

func TestInferenceService_RejectsUnsupportedImageURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockProvider(ctrl)

	svc := NewInferenceService(provider, nil, testInferenceConfig(), logger.Nop())

	for _, imageURL := range []string{"", "   ", "ftp://example.com/a.jpg", "data:text/plain;base64,aGk=", "/tmp/a.jpg"} {
		_, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: imageURL})
		assert.ErrorIs(t, err, ErrInvalidImageURL, imageURL)
	}
}

// ── InferNutrients: cache ───────────────────────────────────────────────────

func TestInferenceService_CachesSuccessfulResults(t *testing.T) {
	p := &scriptedProvider{
		description: []reply{{text: "Omelette"}},
		nutrition:   []reply{{text: `{"calories":220,"protein":14,"carbs":2,"fat":17}`}},
	}
	resultCache := cache.NewMemoryCache()
	svc := NewInferenceService(p, resultCache, testInferenceConfig(), logger.Nop())

	first, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})
	require.NoError(t, err)

	second, err := svc.InferNutrients(context.Background(), 2, models.NutrientInferenceRequest{ImageURL: " " + testImageURL + " "})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.count("description"))
	assert.Equal(t, 1, p.count("nutrition"))
	assert.Equal(t, 1, resultCache.Len())
}

func TestInferenceService_RemoteURLsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultCache := mock.NewMockCache(ctrl)
	resultCache.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	resultCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	p := &scriptedProvider{
		description: []reply{{text: "Pizza slice"}},
		nutrition:   []reply{{text: `{"calories":285,"protein":12,"carbs":36,"fat":10}`}},
	}
	svc := NewInferenceService(p, resultCache, testInferenceConfig(), logger.Nop())

	req := models.NutrientInferenceRequest{ImageURL: "https://cdn.example.com/lunch.jpg"}
	for range 2 {
		_, err := svc.InferNutrients(context.Background(), 1, req)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, p.count("description"))
	assert.Equal(t, 2, p.count("nutrition"))
}

func TestInferenceService_DoesNotCacheFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultCache := mock.NewMockCache(ctrl)

	resultCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, cache.ErrCacheMiss)

	p := &scriptedProvider{
		description: []reply{{text: "Cake"}},
		nutrition:   []reply{{text: `{"calories":300}`}},
	}
	svc := NewInferenceService(p, resultCache, testInferenceConfig(), logger.Nop())

	_, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})
	assert.ErrorIs(t, err, inference.ErrIncompleteResponse)
}

func TestInferenceService_UnreadableCacheEntryIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultCache := mock.NewMockCache(ctrl)

	gomock.InOrder(
		resultCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("not json"), nil),
		resultCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		resultCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).Return(nil),
	)

	p := &scriptedProvider{
		description: []reply{{text: "Apple"}},
		nutrition:   []reply{{text: `{"calories":95,"protein":0,"carbs":25,"fat":0}`}},
	}
	svc := NewInferenceService(p, resultCache, testInferenceConfig(), logger.Nop())

	got, err := svc.InferNutrients(context.Background(), 1, models.NutrientInferenceRequest{ImageURL: testImageURL})
	require.NoError(t, err)
	assert.Equal(t, "Apple", got.Description)
}
