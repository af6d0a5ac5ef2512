package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Two implementations exist: the primary remote provider (Gemini) and a
// deterministic local fallback with a deliberately different vector space.
// The index builder decides which one backs the index at startup.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
