package utils

import "github.com/MKhiriev/go-nutri-track/models"

// SumNutrients returns the element-wise sum of the entries' nutrients.
func SumNutrients(entries []models.FoodEntry) models.NutrientTotals {
	var total models.NutrientTotals
	for _, e := range entries {
		total = total.Add(e.Totals())
	}
	return total
}

// FloorMean returns floor(total / n). It returns 0 when n is not positive.
func FloorMean(total, n int) int {
	if n <= 0 {
		return 0
	}

	q := total / n
	if total%n != 0 && total < 0 {
		q--
	}
	return q
}

// FloorMeanTotals applies [FloorMean] to every nutrient of t.
func FloorMeanTotals(t models.NutrientTotals, n int) models.NutrientTotals {
	return models.NutrientTotals{
		Calories: FloorMean(t.Calories, n),
		Protein:  FloorMean(t.Protein, n),
		Carbs:    FloorMean(t.Carbs, n),
		Fat:      FloorMean(t.Fat, n),
	}
}
