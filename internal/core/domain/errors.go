package domain

import "errors"

// Domain errors represent pipeline failures. They exist so services can
// decide which fallback tier applies; none of them ever reaches a caller
// of AssistantService.Answer, which is total by contract.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoaderFailure indicates a corpus source is missing or corrupt.
	// Always recoverable: the loader degrades to the next tier.
	ErrLoaderFailure = errors.New("loader failure")

	// ErrEmbeddingUnavailable indicates the embedding provider call
	// failed. Recoverable via the secondary local embedder, or by
	// disabling retrieval for the process lifetime.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrIndexUnavailable indicates no similarity index could be built.
	// Retrieval stays disabled for the process lifetime; the assistant
	// runs LLM-only.
	ErrIndexUnavailable = errors.New("vector index unavailable")

	// ErrLLMUnavailable indicates the generation call failed or the
	// provider is unconfigured. Recoverable via canned templates.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrSpeechUnavailable indicates text-to-speech synthesis failed.
	// Never affects the text response.
	ErrSpeechUnavailable = errors.New("speech service unavailable")
)
