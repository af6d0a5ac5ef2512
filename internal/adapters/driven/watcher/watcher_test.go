package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherMarksStaleOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	assert.False(t, w.Stale())

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))

	assert.Eventually(t, w.Stale, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "resume.pdf")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("v1"), 0o600))

	w, err := New(watched)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))

	time.Sleep(200 * time.Millisecond)
	assert.False(t, w.Stale())
}

func TestWatcherCoversNotYetExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("new"), 0o600))

	assert.Eventually(t, w.Stale, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherEmptyPathList(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Stale())
}
