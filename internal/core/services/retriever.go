package services

import (
	"context"
	"strings"

	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// DefaultTopK is the number of chunks retrieved per query.
const DefaultTopK = 3

// contextSeparator joins retrieved chunks in similarity-rank order.
const contextSeparator = "\n\n---\n\n"

// Retriever embeds queries and fetches the closest corpus chunks.
type Retriever struct {
	embedder      driven.EmbeddingService
	index         driven.VectorIndex
	topK          int
	minSimilarity float64
}

// NewRetriever creates a retriever. minSimilarity of 0 disables the
// relevance cutoff, matching the source behaviour of always returning
// the top-K closest chunks.
func NewRetriever(embedder driven.EmbeddingService, index driven.VectorIndex, topK int, minSimilarity float64) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{
		embedder:      embedder,
		index:         index,
		topK:          topK,
		minSimilarity: minSimilarity,
	}
}

// Retrieve returns the concatenated context for the enhanced query plus
// the deduplicated source identifiers, most relevant chunk first.
// It never returns an error: when the index is unavailable or nothing is
// found it returns an empty context, and the composer falls back.
func (r *Retriever) Retrieve(ctx context.Context, enhancedQuery string) (string, []string) {
	if r.embedder == nil || r.index == nil {
		logger.Debug("retrieval disabled, returning empty context")
		return "", nil
	}

	queryVector, err := r.embedder.Embed(ctx, enhancedQuery)
	if err != nil {
		logger.Warn("query embedding failed: %v", err)
		return "", nil
	}

	hits, err := r.index.Search(ctx, queryVector, r.topK)
	if err != nil {
		logger.Warn("similarity search failed: %v", err)
		return "", nil
	}

	var parts []string
	var sources []string
	seen := make(map[string]struct{})

	for _, hit := range hits {
		if r.minSimilarity > 0 && hit.Similarity < r.minSimilarity {
			logger.Debug("dropping hit below cutoff: %.3f < %.3f", hit.Similarity, r.minSimilarity)
			continue
		}
		parts = append(parts, hit.Chunk.Content)
		if _, ok := seen[hit.Chunk.Source]; !ok {
			seen[hit.Chunk.Source] = struct{}{}
			sources = append(sources, hit.Chunk.Source)
		}
	}

	if len(parts) == 0 {
		logger.Debug("no chunks retrieved for query")
		return "", nil
	}

	logger.Debug("retrieved %d chunk(s) from %d source(s)", len(parts), len(sources))
	return strings.Join(parts, contextSeparator), sources
}
