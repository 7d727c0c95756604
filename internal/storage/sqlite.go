// Package storage provides SQLite-based persistence for duel match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tankduel/internal/core"
	"tankduel/internal/match"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchEntry represents a single recorded match.
type MatchEntry struct {
	ID            int64
	GameID        string
	Arena         string
	Winner        core.PlayerID
	Health1       int
	Health2       int
	Shots1        int
	Shots2        int
	DurationTicks int64
	Reason        match.EndReason
	CreatedAt     time.Time
}

// WinStats aggregates match outcomes across the whole history.
type WinStats struct {
	Player1 int
	Player2 int
	Aborted int
	Total   int
}

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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			arena TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			health1 INTEGER NOT NULL DEFAULT 0,
			health2 INTEGER NOT NULL DEFAULT 0,
			shots1 INTEGER NOT NULL DEFAULT 0,
			shots2 INTEGER NOT NULL DEFAULT 0,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
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

// SaveMatch records a finished match. It implements match.Saver so the
// game flow can persist results without a direct storage dependency.
func (s *Store) SaveMatch(result match.Result) error {
	_, err := s.db.Exec(
		`INSERT INTO matches
		 (game_id, arena, winner, health1, health2, shots1, shots2, duration_ticks, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.GameID,
		result.ArenaPreset,
		int(result.Winner),
		result.Health1,
		result.Health2,
		result.Shots1,
		result.Shots2,
		result.DurationTicks,
		result.Reason.String(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save match: %w", err)
	}
	return nil
}

// Ensure Store implements match.Saver
var _ match.Saver = (*Store)(nil)

// RecentMatches retrieves the most recently played matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, arena, winner, health1, health2, shots1, shots2, duration_ticks, end_reason, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var entries []MatchEntry
	for rows.Next() {
		var e MatchEntry
		var winner int
		var reason string
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.GameID,
			&e.Arena,
			&winner,
			&e.Health1,
			&e.Health2,
			&e.Shots1,
			&e.Shots2,
			&e.DurationTicks,
			&reason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Winner = core.PlayerID(winner)
		e.Reason = match.ParseEndReason(reason)
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// WinCounts aggregates how many matches each player has won. Matches
// without a winner (quits) count as aborted.
func (s *Store) WinCounts() (WinStats, error) {
	rows, err := s.db.Query(
		"SELECT winner, COUNT(*) FROM matches GROUP BY winner",
	)
	if err != nil {
		return WinStats{}, fmt.Errorf("storage: cannot query win counts: %w", err)
	}
	defer rows.Close()

	var stats WinStats
	for rows.Next() {
		var winner, count int
		if err := rows.Scan(&winner, &count); err != nil {
			return WinStats{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		switch core.PlayerID(winner) {
		case core.Player1:
			stats.Player1 = count
		case core.Player2:
			stats.Player2 = count
		default:
			stats.Aborted = count
		}
		stats.Total += count
	}

	if err := rows.Err(); err != nil {
		return WinStats{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// MatchCount returns the total number of recorded matches.
func (s *Store) MatchCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count matches: %w", err)
	}
	return count, nil
}

// ClearMatches deletes the entire match history.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes, which
// the driver returns depending on how the column was written.
func parseTimestamp(v any) time.Time {
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
