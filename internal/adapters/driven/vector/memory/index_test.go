package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

func chunk(id, source, content string, embedding []float32) domain.Chunk {
	return domain.Chunk{
		ID:        id,
		Source:    source,
		Content:   content,
		Embedding: embedding,
	}
}

func TestIndexAddAndCount(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, chunk("a", "profile_data", "alpha", []float32{1, 0, 0})))
	require.NoError(t, idx.Add(ctx, chunk("b", "resume_pdf", "beta", []float32{0, 1, 0})))

	assert.Equal(t, 2, idx.Count())
}

func TestIndexRejectsMissingEmbedding(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)

	err = idx.Add(context.Background(), chunk("a", "profile_data", "alpha", nil))
	assert.Error(t, err)
}

func TestIndexSearchRanksBySimilarity(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, chunk("exact", "profile_data", "exact match", []float32{1, 0, 0})))
	require.NoError(t, idx.Add(ctx, chunk("near", "profile_data", "near match", []float32{0.9, 0.1, 0})))
	require.NoError(t, idx.Add(ctx, chunk("far", "resume_pdf", "far away", []float32{0, 0, 1})))

	hits, err := idx.Search(ctx, []float32{1, 0, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)

	assert.Equal(t, "exact", hits[0].Chunk.ID)
	assert.Equal(t, "near", hits[1].Chunk.ID)
	assert.Greater(t, hits[0].Similarity, hits[1].Similarity)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-4)
}

func TestIndexSearchClampsK(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, chunk("only", "profile_data", "single", []float32{1, 0})))

	hits, err := idx.Search(ctx, []float32{1, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestIndexSearchEmpty(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)

	hits, err := idx.Search(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestIndexRoundTripsMetadata(t *testing.T) {
	idx, err := NewIndex()
	require.NoError(t, err)
	ctx := context.Background()

	in := domain.Chunk{
		ID:         "c7",
		DocumentID: "doc-1",
		Source:     "resume_pdf",
		Content:    "chunk body",
		Position:   7,
		Embedding:  []float32{0, 1},
	}
	require.NoError(t, idx.Add(ctx, in))

	hits, err := idx.Search(ctx, []float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, "c7", hits[0].Chunk.ID)
	assert.Equal(t, "doc-1", hits[0].Chunk.DocumentID)
	assert.Equal(t, "resume_pdf", hits[0].Chunk.Source)
	assert.Equal(t, "chunk body", hits[0].Chunk.Content)
	assert.Equal(t, 7, hits[0].Chunk.Position)
}
