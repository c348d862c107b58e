package utils

import (
	"testing"

	"github.com/MKhiriev/go-nutri-track/models"
	"github.com/stretchr/testify/assert"
)

func TestSumNutrients(t *testing.T) {
	entries := []models.FoodEntry{
		{Calories: 500, Protein: 20, Carbs: 60, Fat: 15},
		{Calories: 300, Protein: 10, Carbs: 40, Fat: 5},
	}

	assert.Equal(t, models.NutrientTotals{Calories: 800, Protein: 30, Carbs: 100, Fat: 20}, SumNutrients(entries))
	assert.Equal(t, models.NutrientTotals{}, SumNutrients(nil))
}

func TestFloorMean(t *testing.T) {
	tests := []struct {
		total, n, want int
	}{
		{total: 800, n: 7, want: 114},
		{total: 700, n: 7, want: 100},
		{total: 6, n: 7, want: 0},
		{total: 0, n: 7, want: 0},
		{total: -1, n: 7, want: -1},
		{total: 10, n: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorMean(tt.total, tt.n), "FloorMean(%d, %d)", tt.total, tt.n)
	}
}

func TestFloorMeanTotals(t *testing.T) {
	got := FloorMeanTotals(models.NutrientTotals{Calories: 800, Protein: 30, Carbs: 100, Fat: 20}, 7)
	assert.Equal(t, models.NutrientTotals{Calories: 114, Protein: 4, Carbs: 14, Fat: 2}, got)
}
