package driven

import (
	"context"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// HistoryStore durably records conversation turns and contact submissions
// for audit. Recording is fire-and-forget from the pipeline's perspective:
// a store failure is logged and never affects the response already
// produced.
type HistoryStore interface {
	// RecordTurn persists one chat exchange.
	RecordTurn(ctx context.Context, turn domain.ChatTurn) error

	// RecordContact persists a contact form submission.
	RecordContact(ctx context.Context, msg domain.ContactMessage) error

	// Turns returns the recorded turns for a session, oldest first.
	Turns(ctx context.Context, sessionID string) ([]domain.ChatTurn, error)

	// Close releases resources.
	Close() error
}
