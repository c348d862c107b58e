package models

// NutrientTotals holds summed (or averaged) nutrient values.
type NutrientTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Add returns the element-wise sum of t and o.
func (t NutrientTotals) Add(o NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: t.Calories + o.Calories,
		Protein:  t.Protein + o.Protein,
		Carbs:    t.Carbs + o.Carbs,
		Fat:      t.Fat + o.Fat,
	}
}

// DailyIntakeGoals are the per-day targets a user compares totals against.
type DailyIntakeGoals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// DefaultDailyIntakeGoals returns the goals used until a user saves their own.
func DefaultDailyIntakeGoals() DailyIntakeGoals {
	return DailyIntakeGoals{
		Calories: 2000,
		Protein:  50,
		Carbs:    250,
		Fat:      70,
	}
}

// DailySummary aggregates the entries of one calendar day.
type DailySummary struct {
	Date       string           `json:"date"`
	Totals     NutrientTotals   `json:"totals"`
	EntryCount int              `json:"entry_count"`
	Goals      DailyIntakeGoals `json:"goals"`
}

// WeeklySummary aggregates seven consecutive days ending at To.
// Average is the floor-rounded mean over all days of the range, empty days included.
type WeeklySummary struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Days    []DailySummary   `json:"days"`
	Totals  NutrientTotals   `json:"totals"`
	Average NutrientTotals   `json:"average"`
	Goals   DailyIntakeGoals `json:"goals"`
}
