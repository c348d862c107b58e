// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inference talks to a multimodal chat-completions model and turns its
// text output into validated nutrient values.
package inference

import "context"

//go:generate mockgen -source=provider.go -destination=../mock/inference_provider_mock.go -package=mock

// CompletionRequest is a single prompt sent to the model together with an image.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	// ImageURL is either a base64 data URI or a remote http(s) URL.
	ImageURL  string
	MaxTokens int
	// JSONMode asks the model to answer with a JSON object only.
	JSONMode bool
}

// Provider performs one chat completion and returns the text of the first choice.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
