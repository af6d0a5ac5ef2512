package driven

import "context"

// SpeechService renders text to speech. Optional: synthesis failure must
// never affect the text response, and implementations must bound their
// retries - an unbounded synthesis retry loop is a liveness bug.
type SpeechService interface {
	// Synthesise returns an MP3 rendering of the given text.
	Synthesise(ctx context.Context, text string) ([]byte, error)
}
