package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// GroqClient implements Client against Groq's OpenAI-compatible API.
type GroqClient struct {
	client *openai.Client
}

// NewGroqClient creates a new Groq client.
func NewGroqClient(apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)

	return &GroqClient{client: &client}, nil
}

// GenerateContent generates text content using the specified model.
func (c *GroqClient) GenerateContent(ctx context.Context, prompt, model string, opts GenerateOptions) (string, error) {
	if model == "" {
		return "", fmt.Errorf("model is required")
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = openai.Float(opts.Temperature)
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(opts.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Close releases resources held by the client. The Groq client holds no
// connections outside the request lifecycle.
func (c *GroqClient) Close() error {
	return nil
}
