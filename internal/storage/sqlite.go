// Package storage provides SQLite-based persistence for the swap history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history is an audit log only: a grid screen always starts from its
// configured order and never reads its state back from here.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dragswap/internal/coordinator"
)

// Store manages the SQLite database connection for the swap history.
type Store struct {
	db *sql.DB
}

// SwapEntry represents a single recorded swap.
type SwapEntry struct {
	ID        int64
	SessionID string
	Source    int
	Target    int
	Order     []string // Image names after the swap
	CreatedAt time.Time
}

// Stats contains aggregated statistics over the whole history.
type Stats struct {
	TotalSwaps int
	Sessions   int
	LastSwap   time.Time
}

const orderSep = "\x1f"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS swaps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			source INTEGER NOT NULL,
			target INTEGER NOT NULL,
			order_after TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_swaps_session ON swaps(session_id);
		CREATE INDEX IF NOT EXISTS idx_swaps_created ON swaps(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSwap records a swap. Returns the ID of the inserted record.
func (s *Store) SaveSwap(e SwapEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO swaps (session_id, source, target, order_after) VALUES (?, ?, ?, ?)",
		e.SessionID, e.Source, e.Target, strings.Join(e.Order, orderSep),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save swap: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordSwap implements coordinator.SwapRecorder.
func (s *Store) RecordSwap(rec coordinator.SwapRecord) error {
	order := make([]string, len(rec.Order))
	for i, img := range rec.Order {
		order[i] = img.Name
	}
	_, err := s.SaveSwap(SwapEntry{
		SessionID: rec.Session,
		Source:    rec.Source,
		Target:    rec.Target,
		Order:     order,
	})
	return err
}

// Ensure Store implements SwapRecorder
var _ coordinator.SwapRecorder = (*Store)(nil)

// RecentSwaps retrieves the most recent swaps across all sessions, newest first.
func (s *Store) RecentSwaps(limit int) ([]SwapEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySwaps(
		`SELECT id, session_id, source, target, order_after, created_at
		 FROM swaps
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// SessionSwaps retrieves the swaps of one session, newest first.
func (s *Store) SessionSwaps(sessionID string, limit int) ([]SwapEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySwaps(
		`SELECT id, session_id, source, target, order_after, created_at
		 FROM swaps
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
}

func (s *Store) querySwaps(query string, args ...any) ([]SwapEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query swaps: %w", err)
	}
	defer rows.Close()

	var entries []SwapEntry
	for rows.Next() {
		var e SwapEntry
		var order string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Source, &e.Target, &order, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if order != "" {
			e.Order = strings.Split(order, orderSep)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns totals over the whole history.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT session_id), MAX(created_at) FROM swaps`,
	).Scan(&st.TotalSwaps, &st.Sessions, &last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastSwap = parseTime(last)
	return st, nil
}

// ClearSession deletes all swaps of one session.
func (s *Store) ClearSession(sessionID string) error {
	_, err := s.db.Exec("DELETE FROM swaps WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}

// parseTime handles the datetime column arriving as time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
