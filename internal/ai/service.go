package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/hausabot/sannu/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Service implements the resolver.Completer interface against an
// OpenAI-compatible chat completion endpoint.
type Service struct {
	client       llms.Model
	systemPrompt string
	maxTokens    int
	temperature  float64
}

func NewService(cfg *config.Config) (*Service, error) {
	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Service{
		client:       client,
		systemPrompt: cfg.Prompts.System,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
	}, nil
}

// Complete sends a single user turn to the completion endpoint and returns
// the trimmed reply text. One attempt only, no retries.
func (s *Service) Complete(ctx context.Context, userText string) (string, error) {
	msgs := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, s.systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, userText),
	}

	resp, err := s.client.GenerateContent(
		ctx,
		msgs,
		llms.WithMaxTokens(s.maxTokens),
		llms.WithTemperature(s.temperature),
		llms.WithN(1),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from model")
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}
