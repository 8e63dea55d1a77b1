package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMService wraps the OpenAI chat-completions client behind TextGenerator.
// One client is built at boot and reused for every call.
type LLMService struct {
	client llms.Model
}

func NewLLMService(apiKey, model string) (*LLMService, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &LLMService{client: llm}, nil
}

// Generate issues a single prompt/response exchange. No retries: a failed
// call surfaces to the caller, who surfaces it to the user.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt,
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(4000),
	)
	if err != nil {
		return "", err
	}
	return resp, nil
}
