package driven

import (
	"context"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// Notifier sends outbound notifications for contact submissions.
// Best-effort: errors are returned for logging, never raised further.
type Notifier interface {
	// NotifyOwner informs the portfolio owner of a new submission.
	NotifyOwner(ctx context.Context, msg domain.ContactMessage) error

	// SendAutoReply acknowledges the submission to its sender.
	SendAutoReply(ctx context.Context, msg domain.ContactMessage) error
}
