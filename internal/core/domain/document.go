// Package domain contains the core business types for the portfolio
// assistant: documents, chunks, query intents and the response envelope.
package domain

// Document represents a unit of résumé text produced by a loader.
// It is the canonical representation after cleaning, before chunking.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Source identifies where the content came from
	// (e.g. "profile_data", "resume_pdf", "fallback_profile").
	Source string

	// Type is an optional content tag (e.g. "profile", "resume").
	Type string

	// Content is the full cleaned text before chunking.
	Content string
}

// Chunk represents a retrievable unit within a document.
// Documents are split into overlapping windows for embedding.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Source is inherited from the parent document and reported
	// back to callers as provenance.
	Source string

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// Embedding is the vector representation for similarity search.
	// Populated by the index builder, never exposed past the retriever.
	Embedding []float32
}
