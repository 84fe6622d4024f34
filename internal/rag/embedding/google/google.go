package google

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/careconnect/careconnect-api/internal/rag/embedding"
)

type client struct {
	genAI *genai.Client
	model string
}

// NewEmbedder creates a Google embedding client for the given model.
func NewEmbedder(ctx context.Context, model, apiKey string) (embedding.Embedder, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	return &client{genAI: c, model: model}, nil
}

func (c *client) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	result, err := c.genAI.Models.EmbedContent(ctx, c.model, genai.Text(query),
		&genai.EmbedContentConfig{TaskType: "RETRIEVAL_QUERY"})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("embedding response contained no vectors")
	}
	return result.Embeddings[0].Values, nil
}

func (c *client) EmbedDocuments(ctx context.Context, chunks []string) ([][]float32, error) {
	contents := make([]*genai.Content, 0, len(chunks))
	for _, chunk := range chunks {
		contents = append(contents, &genai.Content{
			Parts: []*genai.Part{{Text: chunk}},
		})
	}

	result, err := c.genAI.Models.EmbedContent(ctx, c.model, contents,
		&genai.EmbedContentConfig{TaskType: "RETRIEVAL_DOCUMENT"})
	if err != nil {
		return nil, fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(result.Embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: got %d for %d chunks",
			len(result.Embeddings), len(chunks))
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, e := range result.Embeddings {
		vectors = append(vectors, e.Values)
	}
	return vectors, nil
}
