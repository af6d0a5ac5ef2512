package driven

import "context"

// LLMService provides text generation for grounded and open-domain
// answers. This is an optional service: when nil or unreachable, the
// composer degrades to deterministic canned templates.
type LLMService interface {
	// Generate produces a completion for the given prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
