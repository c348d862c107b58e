package models

import "math"

// MaxNutrientValue is the largest nutrient value accepted from users or
// inference.
const MaxNutrientValue = math.MaxInt32

// NutrientInferenceRequest is the body of the inference endpoint.
// ImageURL holds either a base64 data URI or a remote http(s) URL.
type NutrientInferenceRequest struct {
	ImageURL string `json:"imageUrl"`
}

// InferenceResult is the nutrient estimate produced for a food photo.
type InferenceResult struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Description string  `json:"description"`
}

// InferenceDraft is the editable form state built from an InferenceResult
// before the user confirms it as a FoodEntry.
type InferenceDraft struct {
	Calories    int
	Protein     int
	Carbs       int
	Fat         int
	Description string
}

// ToRequest converts the draft into a create/update body.
func (d InferenceDraft) ToRequest(imageData string) FoodEntryRequest {
	return FoodEntryRequest{
		Calories:    d.Calories,
		Protein:     d.Protein,
		Carbs:       d.Carbs,
		Fat:         d.Fat,
		Description: d.Description,
		ImageData:   imageData,
	}
}

// DraftFromEntry builds a draft prefilled with the values of an existing entry.
func DraftFromEntry(e FoodEntry) InferenceDraft {
	return InferenceDraft{
		Calories:    e.Calories,
		Protein:     e.Protein,
		Carbs:       e.Carbs,
		Fat:         e.Fat,
		Description: e.Description,
	}
}

// DraftFromResult rounds an inference result into an editable draft. Values
// outside [0, MaxNutrientValue] and NaN are clamped.
func DraftFromResult(r InferenceResult) InferenceDraft {
	return InferenceDraft{
		Calories:    roundNutrient(r.Calories),
		Protein:     roundNutrient(r.Protein),
		Carbs:       roundNutrient(r.Carbs),
		Fat:         roundNutrient(r.Fat),
		Description: r.Description,
	}
}

func roundNutrient(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= MaxNutrientValue:
		return MaxNutrientValue
	}
	return int(math.Round(v))
}
