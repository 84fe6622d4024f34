package llm

import "context"

// Provider generates a completion from a system instruction and a
// user prompt.
type Provider interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
