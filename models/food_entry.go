// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FoodEntry is a single logged meal owned by exactly one user.
//
// The four numeric fields are kcal (Calories) and grams (Protein, Carbs, Fat)
// and are always non-negative once persisted. ImageRef is the blob storage key
// of the attached photo; it is set only after the upload succeeded.
type FoodEntry struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`

	Description string `json:"description"`

	// ImageRef is the key inside blob storage, empty when no photo is attached.
	ImageRef string `json:"image_ref,omitempty"`

	// ImageURL is resolved from ImageRef when entries are returned to callers.
	// It is never stored.
	ImageURL string `json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the table holding food entries.
func (e FoodEntry) TableName() string {
	return "food_entries"
}

// Totals returns the nutrient values of the entry.
func (e FoodEntry) Totals() NutrientTotals {
	return NutrientTotals{
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
	}
}

// FoodEntryRequest is the body of create and update requests.
//
// ImageData is an optional base64 data URI with an already preprocessed photo.
// When present it is uploaded before the record is written.
type FoodEntryRequest struct {
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`
	Carbs       int    `json:"carbs"`
	Fat         int    `json:"fat"`
	Description string `json:"description"`
	ImageData   string `json:"image_data,omitempty"`
}

// ToEntry converts the request into an entry owned by userID.
func (r FoodEntryRequest) ToEntry(userID int64) FoodEntry {
	return FoodEntry{
		UserID:      userID,
		Calories:    r.Calories,
		Protein:     r.Protein,
		Carbs:       r.Carbs,
		Fat:         r.Fat,
		Description: r.Description,
	}
}

// DateRange is an inclusive range of whole days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDayRange returns a range covering the single day of t.
func NewDayRange(t time.Time) DateRange {
	return DateRange{From: t, To: t}
}

// Start returns the first instant of the range (midnight of From).
func (r DateRange) Start() time.Time {
	return StartOfDay(r.From)
}

// End returns the exclusive upper bound of the range (midnight after To).
func (r DateRange) End() time.Time {
	return StartOfDay(r.To).AddDate(0, 0, 1)
}

// Contains reports whether t falls into one of the days of the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start()) && t.Before(r.End())
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	days := 0
	for d := r.Start(); d.Before(r.End()); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
