package driven

import (
	"context"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// VectorIndex provides k-nearest-neighbour similarity search over the
// embedded corpus. Built once at startup, read-only thereafter: concurrent
// reads are safe without locking because no request mutates the index.
type VectorIndex interface {
	// Add inserts a chunk with its embedding.
	Add(ctx context.Context, chunk domain.Chunk) error

	// Search finds the k nearest chunks to the query vector, most
	// similar first.
	Search(ctx context.Context, query []float32, k int) ([]VectorHit, error)

	// Count returns the number of indexed chunks.
	Count() int

	// Close releases resources.
	Close() error
}

// VectorHit represents a similarity search result.
type VectorHit struct {
	// Chunk is the matched chunk (without its embedding).
	Chunk domain.Chunk

	// Similarity is the cosine similarity score (0-1).
	Similarity float64
}
