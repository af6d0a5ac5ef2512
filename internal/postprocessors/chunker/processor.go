// Package chunker splits documents into overlapping fixed-size chunks
// suitable for embedding.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// defaultSeparators order preferred split points from coarse (paragraph)
// to fine (whitespace). A chunk boundary snaps to the last separator
// inside the window; only separator-free text is cut mid-word.
var defaultSeparators = []string{"\n\n", "\n", " "}

// Processor splits document content into overlapping chunks.
type Processor struct {
	chunkSize  int
	overlap    int
	separators []string
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// WithSeparators sets the ordered list of preferred split separators.
func WithSeparators(seps []string) Option {
	return func(p *Processor) {
		if len(seps) > 0 {
			p.separators = seps
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize:  DefaultChunkSize,
		overlap:    DefaultChunkOverlap,
		separators: defaultSeparators,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure overlap doesn't exceed chunk size
	if p.overlap >= p.chunkSize {
		p.overlap = p.chunkSize / 4
	}

	return p
}

// Split chunks every document in order. Deterministic given identical
// input and configuration; never drops content and never produces an
// empty chunk for a non-empty document.
func (p *Processor) Split(docs []domain.Document) []domain.Chunk {
	var chunks []domain.Chunk
	for _, doc := range docs {
		chunks = append(chunks, p.splitDocument(doc)...)
	}
	return chunks
}

// splitDocument windows the content so that every chunk after the first
// starts exactly overlap runes before the previous chunk's end. Dropping
// that prefix from each subsequent chunk reconstructs the source text.
func (p *Processor) splitDocument(doc domain.Document) []domain.Chunk {
	runes := []rune(doc.Content)
	n := len(runes)
	if n == 0 {
		return nil
	}

	var chunks []domain.Chunk
	position := 0
	start := 0

	for start < n {
		end := start + p.chunkSize
		if end > n {
			end = n
		} else {
			end = p.snapToSeparator(runes, start, end)
		}

		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Source:     doc.Source,
			Content:    string(runes[start:end]),
			Position:   position,
		})
		position++

		if end >= n {
			break
		}

		next := end - p.overlap
		if next <= start {
			// Forward progress even with degenerate configuration.
			next = start + 1
		}
		start = next
	}

	return chunks
}

// snapToSeparator moves the window end back to just past the last
// preferred separator inside [start, end). Separators are tried coarse
// to fine; a window with no separator at all is cut as-is.
func (p *Processor) snapToSeparator(runes []rune, start, end int) int {
	window := string(runes[start:end])
	for _, sep := range p.separators {
		idx := strings.LastIndex(window, sep)
		if idx <= 0 {
			continue
		}
		// Keep the separator with the leading chunk so no content is lost.
		return start + len([]rune(window[:idx])) + len([]rune(sep))
	}
	return end
}
