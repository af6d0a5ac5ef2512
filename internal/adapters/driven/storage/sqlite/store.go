// Package sqlite provides durable history storage for chat turns and
// contact submissions.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// Store is a SQLite-backed history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store in the given data directory. An empty
// dataDir defaults to ~/.portfolio-assistant/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".portfolio-assistant", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// WAL keeps concurrent request handlers from blocking each other.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordTurn persists one chat exchange.
func (s *Store) RecordTurn(ctx context.Context, turn domain.ChatTurn) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO chat_turns (session_id, message, response) VALUES (?, ?, ?)",
		turn.SessionID, turn.Message, turn.Response,
	)
	if err != nil {
		return fmt.Errorf("inserting chat turn: %w", err)
	}
	return nil
}

// RecordContact persists a contact form submission.
func (s *Store) RecordContact(ctx context.Context, msg domain.ContactMessage) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contact_messages (name, email, message) VALUES (?, ?, ?)",
		msg.Name, msg.Email, msg.Message,
	)
	if err != nil {
		return fmt.Errorf("inserting contact message: %w", err)
	}
	return nil
}

// Turns returns the recorded turns for a session, oldest first.
func (s *Store) Turns(ctx context.Context, sessionID string) ([]domain.ChatTurn, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT session_id, message, response FROM chat_turns WHERE session_id = ? ORDER BY id",
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying chat turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.ChatTurn
	for rows.Next() {
		var t domain.ChatTurn
		if err := rows.Scan(&t.SessionID, &t.Message, &t.Response); err != nil {
			return nil, fmt.Errorf("scanning chat turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chat turns: %w", err)
	}
	return turns, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies embedded up-migrations past the current schema version.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		contents, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(contents)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}
