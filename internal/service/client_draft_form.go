// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-nutri-track/models"
)

// DraftForm holds the editable nutrient draft of one entry form and the
// state of its inference request.
//
// Every Begin hands out a new generation and cancels the request started by
// the previous one. Complete applies a result only when its generation is
// still the latest, so an answer that arrives after a newer photo was picked
// is dropped. On error the draft is left as it was.
//
// Generations are drawn from one counter shared by all forms, so an answer
// addressed to a closed form never matches the form opened after it.
type DraftForm struct {
	mu sync.Mutex

	generation uint64
	cancel     context.CancelFunc

	loading bool
	draft   models.InferenceDraft
	err     error
}

var draftGenerations atomic.Uint64

// NewDraftForm returns a form prefilled with initial.
func NewDraftForm(initial models.InferenceDraft) *DraftForm {
	return &DraftForm{draft: initial, generation: draftGenerations.Add(1)}
}

// Begin starts a new inference request and returns its generation together
// with a context that is cancelled once a newer request begins or the form
// is reset.
func (f *DraftForm) Begin(ctx context.Context) (uint64, context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	f.generation = draftGenerations.Add(1)
	f.cancel = cancel
	f.loading = true
	f.err = nil

	return f.generation, reqCtx
}

// Complete reports the outcome of request gen. It returns false, without
// touching the form, when gen is not the latest generation.
func (f *DraftForm) Complete(gen uint64, result models.InferenceResult, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		return false
	}

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.loading = false

	if err != nil {
		f.err = err
		return true
	}

	f.draft = models.DraftFromResult(result)
	f.err = nil
	return true
}

// Generation returns the generation of the latest request.
func (f *DraftForm) Generation() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.generation
}

// Loading reports whether the latest request is still pending.
func (f *DraftForm) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Draft returns the current nutrient values.
func (f *DraftForm) Draft() models.InferenceDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Err returns the error of the last applied request, if it failed.
func (f *DraftForm) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// SetDraft stores values typed by the user.
func (f *DraftForm) SetDraft(d models.InferenceDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Reset cancels any pending request and clears the form. Results of requests
// begun before Reset are discarded.
func (f *DraftForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.generation = draftGenerations.Add(1)
	f.loading = false
	f.draft = models.InferenceDraft{}
	f.err = nil
}

// ParseDraft converts the text fields of the entry form. Decimal input is
// rounded to the nearest integer.
func ParseDraft(calories, protein, carbs, fat, description string) (models.InferenceDraft, error) {
	values := make([]int, 0, 4)

	for _, field := range []struct{ name, raw string }{
		{"calories", calories},
		{"protein", protein},
		{"carbs", carbs},
		{"fat", fat},
	} {
		v, err := parseNutrient(field.raw)
		if err != nil {
			return models.InferenceDraft{}, fmt.Errorf("%w: %s: %w", ErrValidation, field.name, err)
		}
		values = append(values, v)
	}

	return models.InferenceDraft{
		Calories:    values[0],
		Protein:     values[1],
		Carbs:       values[2],
		Fat:         values[3],
		Description: strings.TrimSpace(description),
	}, nil
}

func parseNutrient(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("value is required")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative", raw)
	}
	if v > models.MaxNutrientValue {
		return 0, fmt.Errorf("%q is too large", raw)
	}

	return int(math.Round(v)), nil
}
