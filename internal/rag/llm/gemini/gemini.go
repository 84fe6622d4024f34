package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/careconnect/careconnect-api/internal/rag/llm"
)

type client struct {
	genAI *genai.Client
	model string
}

// NewProvider creates a Gemini chat-completion client. Temperature is
// pinned to zero: the assistant must answer strictly from the supplied
// context, not improvise.
func NewProvider(ctx context.Context, model, apiKey string) (llm.Provider, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &client{genAI: c, model: model}, nil
}

func (c *client) Generate(ctx context.Context, system, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	result, err := c.genAI.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	return result.Text(), nil
}
