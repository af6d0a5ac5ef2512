package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

func validContact() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    "Jordan Recruiter",
		Email:   "jordan@example.com",
		Message: "Interested in your RAG work.",
	}
}

func TestContactSubmitRecordsAndNotifies(t *testing.T) {
	history := &mockHistory{}
	notifier := &mockNotifier{}
	c := NewContact(history, notifier)

	err := c.Submit(context.Background(), validContact())

	require.NoError(t, err)
	require.Len(t, history.contacts, 1)
	assert.Equal(t, "jordan@example.com", history.contacts[0].Email)
	assert.Equal(t, 1, notifier.ownerNotified)
	assert.Equal(t, 1, notifier.repliesSent)
}

func TestContactSubmitTrimsFields(t *testing.T) {
	history := &mockHistory{}
	c := NewContact(history, nil)

	msg := domain.ContactMessage{
		Name:    "  Jordan  ",
		Email:   " jordan@example.com ",
		Message: " hello ",
	}
	require.NoError(t, c.Submit(context.Background(), msg))
	require.Len(t, history.contacts, 1)
	assert.Equal(t, "Jordan", history.contacts[0].Name)
	assert.Equal(t, "jordan@example.com", history.contacts[0].Email)
	assert.Equal(t, "hello", history.contacts[0].Message)
}

func TestContactSubmitValidation(t *testing.T) {
	c := NewContact(&mockHistory{}, &mockNotifier{})
	ctx := context.Background()

	tests := []struct {
		name string
		msg  domain.ContactMessage
	}{
		{"missing name", domain.ContactMessage{Email: "a@b.com", Message: "hi"}},
		{"missing message", domain.ContactMessage{Name: "A", Email: "a@b.com"}},
		{"bad email", domain.ContactMessage{Name: "A", Email: "not-an-email", Message: "hi"}},
		{"empty email", domain.ContactMessage{Name: "A", Message: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Submit(ctx, tt.msg)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestContactSubmitStorageFailureIsReturned(t *testing.T) {
	c := NewContact(&mockHistory{broken: true}, &mockNotifier{})

	err := c.Submit(context.Background(), validContact())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContactSubmitNotifierFailureIsSwallowed(t *testing.T) {
	history := &mockHistory{}
	c := NewContact(history, &mockNotifier{broken: true})

	err := c.Submit(context.Background(), validContact())
	assert.NoError(t, err)
	assert.Len(t, history.contacts, 1, "stored despite delivery failure")
}
