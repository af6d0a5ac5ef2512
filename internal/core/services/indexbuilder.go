package services

import (
	"context"
	"fmt"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// BuildIndex embeds every chunk and populates the similarity index. It
// is the one-time startup barrier: the assistant is constructed only
// after it returns.
//
// Failure policy: if the primary embedding provider fails, the secondary
// local provider takes over (its vector space differs, which is fine as
// long as queries are embedded by the same service). If both fail, no
// index exists and retrieval stays disabled for the process lifetime.
//
// Returns the embedding service that populated the index; queries must
// be embedded with it.
func BuildIndex(
	ctx context.Context,
	chunks []domain.Chunk,
	primary, secondary driven.EmbeddingService,
	index driven.VectorIndex,
) (driven.EmbeddingService, error) {
	logger.Section("Index Construction")

	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", domain.ErrIndexUnavailable)
	}
	if index == nil {
		return nil, fmt.Errorf("%w: no index configured", domain.ErrIndexUnavailable)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}

	embedder, vectors, err := embedCorpus(ctx, texts, primary, secondary)
	if err != nil {
		return nil, err
	}

	for i := range chunks {
		chunk := chunks[i]
		chunk.Embedding = vectors[i]
		if err := index.Add(ctx, chunk); err != nil {
			return nil, fmt.Errorf("%w: indexing chunk %d: %w", domain.ErrIndexUnavailable, i, err)
		}
	}

	logger.Info("index built: %d chunk(s), model %s", index.Count(), embedder.ModelName())
	return embedder, nil
}

// embedCorpus tries the primary provider, then the secondary.
func embedCorpus(
	ctx context.Context,
	texts []string,
	primary, secondary driven.EmbeddingService,
) (driven.EmbeddingService, [][]float32, error) {
	if primary != nil {
		vectors, err := primary.EmbedBatch(ctx, texts)
		if err == nil && len(vectors) == len(texts) {
			return primary, vectors, nil
		}
		logger.Warn("primary embedding provider failed, trying local fallback: %v", err)
	}

	if secondary != nil {
		vectors, err := secondary.EmbedBatch(ctx, texts)
		if err == nil && len(vectors) == len(texts) {
			logger.Info("corpus embedded with local fallback model %s", secondary.ModelName())
			return secondary, vectors, nil
		}
		logger.Warn("secondary embedding provider failed: %v", err)
	}

	return nil, nil, fmt.Errorf("%w: all embedding providers failed", domain.ErrEmbeddingUnavailable)
}
