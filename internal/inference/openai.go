package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
)

const imageDetail = "low"

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIProvider struct {
	client      *utils.HTTPClient
	model       string
	callTimeout time.Duration
}

// NewOpenAIProvider returns a [Provider] for any OpenAI-compatible
// /chat/completions endpoint. Every call is bounded by cfg.CallTimeout.
func NewOpenAIProvider(cfg config.Inference, log *logger.Logger) Provider {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), 0)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	log.Info().Str("func", "NewOpenAIProvider").
		Str("base_url", cfg.BaseURL).
		Str("model", cfg.Model).
		Dur("call_timeout", cfg.CallTimeout).
		Msg("inference provider configured")

	return &openAIProvider{
		client:      client,
		model:       cfg.Model,
		callTimeout: cfg.CallTimeout,
	}
}

func (p *openAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	log := logger.FromContext(ctx)

	if p.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.callTimeout)
		defer cancel()
	}

	body := chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: req.UserPrompt},
				{Type: "image_url", ImageURL: &imageRef{URL: req.ImageURL, Detail: imageDetail}},
			}},
		},
		MaxTokens: req.MaxTokens,
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	var result chatCompletionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn().Str("func", "openAIProvider.Complete").Dur("timeout", p.callTimeout).Msg("provider call timed out")
		}
		return "", fmt.Errorf("%w: %w", ErrProviderTransport, err)
	}

	if resp.IsError() {
		log.Error().Str("func", "openAIProvider.Complete").Int("status", resp.StatusCode()).Msg("provider returned error status")
		return "", fmt.Errorf("%w: %d %s", ErrProviderStatus, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return result.Choices[0].Message.Content, nil
}

var _ Provider = (*openAIProvider)(nil)
