package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driving"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// Ensure Contact implements the interface.
var _ driving.ContactService = (*Contact)(nil)

// Contact handles contact-form submissions: validate, persist, notify.
// Persistence is authoritative; email delivery is best-effort.
type Contact struct {
	history  driven.HistoryStore
	notifier driven.Notifier
}

// NewContact creates the contact service. notifier may be nil, in which
// case submissions are stored without email delivery.
func NewContact(history driven.HistoryStore, notifier driven.Notifier) *Contact {
	return &Contact{history: history, notifier: notifier}
}

// Submit validates and records a contact message, then notifies the
// owner and sends the sender an auto-reply. Only validation and
// persistence failures are returned; notification failures are logged.
func (c *Contact) Submit(ctx context.Context, msg domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Message == "" {
		return fmt.Errorf("%w: name and message are required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return fmt.Errorf("%w: invalid email address %q", domain.ErrInvalidInput, msg.Email)
	}

	if c.history != nil {
		if err := c.history.RecordContact(ctx, msg); err != nil {
			return fmt.Errorf("storing contact message: %w", err)
		}
	}

	if c.notifier != nil {
		if err := c.notifier.NotifyOwner(ctx, msg); err != nil {
			logger.Warn("owner notification failed: %v", err)
		}
		if err := c.notifier.SendAutoReply(ctx, msg); err != nil {
			logger.Warn("auto-reply failed: %v", err)
		}
	}

	logger.Info("contact message received from %s <%s>", msg.Name, msg.Email)
	return nil
}
