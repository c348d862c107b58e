// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrRetriesExhausted is returned when every attempt of [Retry] failed.
// It wraps the error of the last attempt.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryPolicy describes how many times an operation is attempted and how
// long to wait between attempts. The n-th wait lasts Backoff * n.
type RetryPolicy struct {
	// Attempts is the total number of attempts, including the first one.
	Attempts int
	// Backoff is the base delay of the linear backoff.
	Backoff time.Duration
	// OnRetry, if set, is called after a failed attempt that will be retried.
	OnRetry func(attempt int, err error)
}

// DefaultRetryPolicy returns three attempts with a one second linear backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Backoff: time.Second}
}

// Retry runs op until it succeeds or the policy's attempts are used up.
// Every error returned by op is retried. Cancelling ctx stops the waiting and
// returns the context error.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(ctx context.Context) (T, error)) (T, error) {
	var (
		result  T
		attempt int
	)

	attempts := max(policy.Attempts, 1)
	backoff := retry.WithMaxRetries(uint64(attempts-1), linearBackoff(policy.Backoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		value, err := op(ctx)
		if err != nil {
			if policy.OnRetry != nil && attempt < attempts {
				policy.OnRetry(attempt, err)
			}
			return retry.RetryableError(err)
		}

		result = value
		return nil
	})
	if err != nil {
		var zero T
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return zero, err
		}
		return zero, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempt, err)
	}

	return result, nil
}

// linearBackoff waits base, 2*base, 3*base, ...
func linearBackoff(base time.Duration) retry.Backoff {
	var n int64
	return retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return base * time.Duration(n), false
	})
}
