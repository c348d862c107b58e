package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Retry ─────────────────────────────────────────────────────────────────────

func TestRetry_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), RetryPolicy{Attempts: 3, Backoff: time.Millisecond},
		func(ctx context.Context) (string, error) {
			calls++
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestRetry_SucceedsOnLastAttempt(t *testing.T) {
	calls := 0
	var retried []int
	policy := RetryPolicy{
		Attempts: 3,
		Backoff:  time.Millisecond,
		OnRetry:  func(attempt int, err error) { retried = append(retried, attempt) },
	}

	got, err := Retry(context.Background(), policy, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestRetry_ExhaustedReturnsLastError(t *testing.T) {
	calls := 0
	errLast := errors.New("third failure")

	_, err := Retry(context.Background(), RetryPolicy{Attempts: 3, Backoff: time.Millisecond},
		func(ctx context.Context) (int, error) {
			calls++
			if calls == 3 {
				return 0, errLast
			}
			return 0, errors.New("earlier failure")
		})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, errLast)
	assert.Equal(t, 3, calls)
}

func TestRetry_LinearBackoff(t *testing.T) {
	var stamps []time.Time
	base := 20 * time.Millisecond

	_, err := Retry(context.Background(), RetryPolicy{Attempts: 3, Backoff: base},
		func(ctx context.Context) (int, error) {
			stamps = append(stamps, time.Now())
			return 0, errors.New("fail")
		})

	require.Error(t, err)
	require.Len(t, stamps, 3)
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), base)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), 2*base)
}

func TestRetry_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), RetryPolicy{}, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("fail")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	_, err := Retry(ctx, RetryPolicy{Attempts: 3, Backoff: time.Hour}, func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, errors.New("fail")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, calls)
}

func TestDefaultRetryPolicy(t *testing.T) {
	p := DefaultRetryPolicy()
	assert.Equal(t, 3, p.Attempts)
	assert.Equal(t, time.Second, p.Backoff)
}
