package inference

// Prompts of the two inference stages.
const (
	DescriptionSystemPrompt = "You are a food recognition expert. Look at the photo and describe the food."
	DescriptionUserPrompt   = "Give a short description of the food in this image and its estimated weight in grams. Answer with the description only, nothing else."

	NutritionSystemPrompt = "You are a food nutrition expert. Respond only with a JSON object and no other text."
	NutritionUserPrompt   = `Estimate the nutrient facts of the food in this image. Return only a JSON object with exactly the keys "calories", "protein", "carbs" and "fat" as numbers (kcal and grams).`
)

// DescriptionRequest builds the request of the description stage.
func DescriptionRequest(imageURL string, maxTokens int) CompletionRequest {
	return CompletionRequest{
		SystemPrompt: DescriptionSystemPrompt,
		UserPrompt:   DescriptionUserPrompt,
		ImageURL:     imageURL,
		MaxTokens:    maxTokens,
	}
}

// NutritionRequest builds the request of the nutrition stage. It does not
// depend on the description stage and sees the same image.
func NutritionRequest(imageURL string, maxTokens int) CompletionRequest {
	return CompletionRequest{
		SystemPrompt: NutritionSystemPrompt,
		UserPrompt:   NutritionUserPrompt,
		ImageURL:     imageURL,
		MaxTokens:    maxTokens,
		JSONMode:     true,
	}
}
