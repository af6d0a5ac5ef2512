// Package local provides a deterministic offline embedding service used
// when the remote provider is unavailable. Vectors are derived from token
// hashes, so similar texts share features without any model inference.
package local

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// Ensure EmbeddingService implements the interface.
var _ driven.EmbeddingService = (*EmbeddingService)(nil)

// DefaultDimensions keeps vectors small; quality only needs to rank a
// corpus of a few dozen chunks.
const DefaultDimensions = 256

// modelName identifies this fallback in logs and index metadata.
const modelName = "local-hash-v1"

// EmbeddingService embeds text as a normalised bag-of-tokens hash vector.
// Deterministic: the same text always yields the same vector.
type EmbeddingService struct {
	dimensions int
}

// NewEmbeddingService creates the local embedding service.
func NewEmbeddingService() *EmbeddingService {
	return &EmbeddingService{dimensions: DefaultDimensions}
}

// Embed generates a vector embedding for the given text.
func (s *EmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, s.dimensions)

	for _, token := range tokenise(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		sum := h.Sum32()

		// Bucket by hash; sign bit decorrelates colliding tokens.
		bucket := int(sum % uint32(s.dimensions))
		sign := float32(1)
		if sum&0x80000000 != 0 {
			sign = -1
		}
		vector[bucket] += sign
	}

	normalise(vector)
	return vector, nil
}

// EmbedBatch generates embeddings for multiple texts.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

// Dimensions returns the embedding vector size.
func (s *EmbeddingService) Dimensions() int {
	return s.dimensions
}

// ModelName returns the name of the embedding model being used.
func (s *EmbeddingService) ModelName() string {
	return modelName
}

// Close releases resources. No-op for the local service.
func (s *EmbeddingService) Close() error {
	return nil
}

// tokenise lower-cases and splits on non-alphanumeric runes.
func tokenise(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}

// normalise scales the vector to unit length in place. A zero vector is
// left untouched so empty text stays orthogonal to everything.
func normalise(vector []float32) {
	var sum float64
	for _, v := range vector {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		return
	}
	norm := float32(math.Sqrt(sum))
	for i := range vector {
		vector[i] /= norm
	}
}
