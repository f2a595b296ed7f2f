// Package textgen wraps the completion backend that continues weapon
// description prompts. The backend speaks the OpenAI completion API, so any
// OpenAI-compatible server (llama.cpp, vLLM, a hosted model) can serve it.
package textgen

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Samer-Gassouma/aeon-generator/internal/errors"
)

//go:generate mockgen -destination=mock/mock_client.go -package=textgenmock github.com/Samer-Gassouma/aeon-generator/internal/clients/textgen Client

// CompleteInput contains parameters for a prompt continuation
type CompleteInput struct {
	Prompt string

	// MaxTokens bounds the continuation length
	MaxTokens int

	Temperature float32

	// FrequencyPenalty discourages the small models we target from
	// looping on the same phrase
	FrequencyPenalty float32
}

// CompleteOutput contains the continuation text
type CompleteOutput struct {
	// Text is the continuation only, without the prompt
	Text string
}

// Client defines the completion backend operations
type Client interface {
	// Complete continues a prompt and returns the generated text
	Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error)
}

// Config holds the configuration for the OpenAI-compatible client
type Config struct {
	// BaseURL points at the completion server. Empty means the OpenAI
	// default, which is almost never what a deployment wants.
	BaseURL string

	APIKey string

	// Model names the model the backend should load
	Model string
}

// Validate ensures all required fields are provided
func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.InvalidArgument("model is required")
	}
	return nil
}

type openaiClient struct {
	api   *openai.Client
	model string
}

// New creates a completion client against an OpenAI-compatible server
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &openaiClient{
		api:   openai.NewClientWithConfig(apiConfig),
		model: cfg.Model,
	}, nil
}

var _ Client = (*openaiClient)(nil)

func (c *openaiClient) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Prompt == "" {
		return nil, errors.InvalidArgument("prompt cannot be empty")
	}

	resp, err := c.api.CreateCompletion(ctx, openai.CompletionRequest{
		Model:            c.model,
		Prompt:           input.Prompt,
		MaxTokens:        input.MaxTokens,
		Temperature:      input.Temperature,
		FrequencyPenalty: input.FrequencyPenalty,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "completion request failed")
	}

	if len(resp.Choices) == 0 {
		return nil, errors.Internal("completion backend returned no choices")
	}

	return &CompleteOutput{Text: resp.Choices[0].Text}, nil
}
