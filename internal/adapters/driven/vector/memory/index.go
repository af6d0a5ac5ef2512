// Package memory provides an in-process vector index backed by chromem-go.
package memory

import (
	"context"
	"fmt"
	"strconv"

	chromem "github.com/philippgille/chromem-go"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// collectionName holds the embedded corpus. One process, one collection.
const collectionName = "portfolio"

// Index is an in-memory cosine-similarity index over embedded chunks.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewIndex creates an empty in-memory index.
func NewIndex() (*Index, error) {
	db := chromem.NewDB()

	// The embedding func is nil: every document arrives pre-embedded.
	collection, err := db.CreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return &Index{db: db, collection: collection}, nil
}

// Add inserts a chunk with its embedding.
func (i *Index) Add(ctx context.Context, chunk domain.Chunk) error {
	if len(chunk.Embedding) == 0 {
		return fmt.Errorf("chunk %s has no embedding", chunk.ID)
	}

	doc := chromem.Document{
		ID:        chunk.ID,
		Embedding: chunk.Embedding,
		Content:   chunk.Content,
		Metadata: map[string]string{
			"source":      chunk.Source,
			"document_id": chunk.DocumentID,
			"position":    strconv.Itoa(chunk.Position),
		},
	}
	if err := i.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("adding document %s: %w", chunk.ID, err)
	}
	return nil
}

// Search finds the k nearest chunks to the query vector, most similar
// first. Asking for more results than the collection holds returns
// everything rather than an error.
func (i *Index) Search(ctx context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	count := i.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := i.collection.QueryEmbedding(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	hits := make([]driven.VectorHit, len(results))
	for n, res := range results {
		position, _ := strconv.Atoi(res.Metadata["position"])
		hits[n] = driven.VectorHit{
			Chunk: domain.Chunk{
				ID:         res.ID,
				DocumentID: res.Metadata["document_id"],
				Source:     res.Metadata["source"],
				Content:    res.Content,
				Position:   position,
			},
			Similarity: float64(res.Similarity),
		}
	}
	return hits, nil
}

// Count returns the number of indexed chunks.
func (i *Index) Count() int {
	return i.collection.Count()
}

// Close releases resources. The in-memory store has nothing to release.
func (i *Index) Close() error {
	return nil
}
