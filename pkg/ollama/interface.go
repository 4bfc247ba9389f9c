package ollama

import "context"

// Generator is the text-generation interface implemented by Client.
// Use cases depend on this so tests can substitute a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
