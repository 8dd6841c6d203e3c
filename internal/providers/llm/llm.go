package llm

import "context"

type Provider interface {
	// GenerateText returns the model's full reply to a single-turn prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}
