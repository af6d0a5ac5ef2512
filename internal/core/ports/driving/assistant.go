// Package driving provides interfaces for inbound adapters
// (primary ports). The HTTP API, the MCP server and the CLI all drive
// the application through these.
package driving

import (
	"context"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// AssistantService answers natural-language questions about the profile.
type AssistantService interface {
	// Answer is total: for any input it returns a well-formed envelope
	// with non-empty Response and Sources. Degradations are visible only
	// through the Sources field.
	Answer(ctx context.Context, req domain.AskRequest) domain.Envelope
}

// ContactService handles contact form submissions.
type ContactService interface {
	// Submit records the message and triggers best-effort notification.
	// Returns an error for invalid input or persistence failure, never
	// for downstream notification failures.
	Submit(ctx context.Context, msg domain.ContactMessage) error
}
