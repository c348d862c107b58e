package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-nutri-track/models"
)

// NutrientKeys are the keys the nutrition stage must return.
var NutrientKeys = []string{"calories", "protein", "carbs", "fat"}

// ParseNutrients extracts the first JSON object of raw and validates that it
// holds all four nutrient keys with finite, non-negative numeric values no
// greater than [models.MaxNutrientValue]. Numbers encoded as strings are
// accepted.
func ParseNutrients(raw string) (models.InferenceResult, error) {
	block, err := ExtractJSONObject(raw)
	if err != nil {
		return models.InferenceResult{}, err
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(block), &obj); err != nil {
		return models.InferenceResult{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, raw, err)
	}

	var missing []string
	values := make(map[string]float64, len(NutrientKeys))
	for _, key := range NutrientKeys {
		v, ok := obj[key]
		if !ok || v == nil {
			missing = append(missing, key)
			continue
		}

		n, err := toNumber(v)
		if err != nil {
			return models.InferenceResult{}, fmt.Errorf("%w: %s: %w in %q", ErrInvalidFormat, key, err, raw)
		}
		values[key] = n
	}

	if len(missing) > 0 {
		return models.InferenceResult{}, fmt.Errorf("%w: missing %s in %s", ErrIncompleteResponse, strings.Join(missing, ", "), block)
	}

	return models.InferenceResult{
		Calories: values["calories"],
		Protein:  values["protein"],
		Carbs:    values["carbs"],
		Fat:      values["fat"],
	}, nil
}

func toNumber(v any) (float64, error) {
	var n float64

	switch value := v.(type) {
	case float64:
		n = value
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", value)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}

	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return 0, fmt.Errorf("not a finite number: %v", v)
	case n < 0:
		return 0, fmt.Errorf("negative value %v", n)
	case n > models.MaxNutrientValue:
		return 0, fmt.Errorf("value %v is too large", n)
	}

	return n, nil
}
