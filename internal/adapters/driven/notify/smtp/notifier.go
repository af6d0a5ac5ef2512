// Package smtp delivers contact-form notifications over SMTP.
package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// Ensure Notifier implements the interface.
var _ driven.Notifier = (*Notifier)(nil)

// DefaultPort is the SMTP submission port.
const DefaultPort = 587

// Config holds SMTP delivery settings.
type Config struct {
	// Host is the SMTP server hostname (required).
	Host string

	// Port is the SMTP port (default: 587).
	Port int

	// Username authenticates the sending account.
	Username string

	// Password authenticates the sending account.
	Password string

	// From is the sender address. Defaults to Username.
	From string

	// Owner is the portfolio owner's address receiving notifications.
	Owner string
}

// Notifier sends contact notifications through an SMTP account.
type Notifier struct {
	cfg Config
}

// NewNotifier creates an SMTP notifier.
func NewNotifier(cfg Config) (*Notifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: host is required")
	}
	if cfg.Owner == "" {
		return nil, fmt.Errorf("smtp: owner address is required")
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &Notifier{cfg: cfg}, nil
}

// NotifyOwner informs the portfolio owner of a new submission.
func (n *Notifier) NotifyOwner(ctx context.Context, msg domain.ContactMessage) error {
	subject := fmt.Sprintf("Portfolio contact from %s", msg.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)
	return n.send(ctx, n.cfg.Owner, subject, body)
}

// SendAutoReply acknowledges the submission to its sender.
func (n *Notifier) SendAutoReply(ctx context.Context, msg domain.ContactMessage) error {
	subject := "Thanks for reaching out"
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for your message. I've received it and will get back to you soon.\n\nBest,\nSandip Baste\n",
		msg.Name,
	)
	return n.send(ctx, msg.Email, subject, body)
}

// send builds and delivers one plain-text message.
func (n *Notifier) send(ctx context.Context, to, subject, body string) error {
	m := mail.NewMsg()
	if err := m.From(n.cfg.From); err != nil {
		return fmt.Errorf("smtp: setting from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("smtp: setting to address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if n.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.Username),
			mail.WithPassword(n.cfg.Password),
		)
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp: creating client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp: sending to %s: %w", to, err)
	}
	return nil
}
