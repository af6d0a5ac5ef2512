package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreRecordAndListTurns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	turns := []domain.ChatTurn{
		{SessionID: "s1", Message: "hello", Response: "hi there"},
		{SessionID: "s1", Message: "skills?", Response: "Python"},
		{SessionID: "s2", Message: "other session", Response: "ok"},
	}
	for _, turn := range turns {
		require.NoError(t, store.RecordTurn(ctx, turn))
	}

	got, err := store.Turns(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Message, "oldest first")
	assert.Equal(t, "skills?", got[1].Message)

	got, err = store.Turns(ctx, "s2")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStoreTurnsUnknownSession(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Turns(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStoreRecordContact(t *testing.T) {
	store := newTestStore(t)

	err := store.RecordContact(context.Background(), domain.ContactMessage{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	var count int
	row := store.db.QueryRow("SELECT COUNT(*) FROM contact_messages")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestStoreMigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.RecordTurn(context.Background(), domain.ChatTurn{
		SessionID: "s1", Message: "m", Response: "r",
	}))
	require.NoError(t, first.Close())

	// Reopening the same directory must not re-run applied migrations.
	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	turns, err := second.Turns(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, turns, 1, "data survives reopen")
}
