// Package storage records Blockfall play history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished sessions are recorded. Game state is never stored, so a
// session cannot be resumed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons for a recorded session.
const (
	EndGameOver = "game_over"
	EndQuit     = "quit"
)

// Store manages the SQLite connection for play history.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished play session.
type SessionRecord struct {
	ID        string
	GameID    string
	Player    string
	Seed      int64
	Pieces    int
	EndReason string
	StartedAt time.Time
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates the history of one game.
type Stats struct {
	GameID     string
	Sessions   int
	GameOvers  int
	TotalPlay  time.Duration
	Longest    time.Duration
	LastPlayed time.Time
}

// Open creates or opens the database at dbPath, creating parent
// directories and running migrations. A leading ~ expands to the home directory.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL,
			pieces INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			started_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(game_id, started_ms DESC);
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

// SaveSession records a finished session and returns its ID.
// An empty rec.ID is replaced by a new UUID.
func (s *Store) SaveSession(rec SessionRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.EndReason == "" {
		rec.EndReason = EndQuit
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, game_id, player, seed, pieces, end_reason, started_ms, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Player, rec.Seed, rec.Pieces, rec.EndReason,
		rec.StartedAt.UnixMilli(), rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return rec.ID, nil
}

const sessionColumns = `id, game_id, player, seed, pieces, end_reason, started_ms, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (SessionRecord, error) {
	var (
		rec        SessionRecord
		startedMS  int64
		durationMS int64
		createdAt  any
	)
	err := row.Scan(&rec.ID, &rec.GameID, &rec.Player, &rec.Seed, &rec.Pieces,
		&rec.EndReason, &startedMS, &durationMS, &createdAt)
	if err != nil {
		return rec, err
	}
	rec.StartedAt = time.UnixMilli(startedMS)
	rec.Duration = time.Duration(durationMS) * time.Millisecond
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// parseTime handles both driver representations of a DATETIME column.
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

// RecentSessions returns the latest sessions of a game, newest first.
func (s *Store) RecentSessions(gameID string, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+sessionColumns+`
		 FROM sessions
		 WHERE game_id = ?
		 ORDER BY started_ms DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// SessionByID returns one session, or nil if it does not exist.
func (s *Store) SessionByID(id string) (*SessionRecord, error) {
	row := s.db.QueryRow(`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return &rec, nil
}

// GameStats aggregates all recorded sessions of a game.
func (s *Store) GameStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var totalMS, longestMS, lastMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN end_reason = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(duration_ms), 0),
		        COALESCE(MAX(duration_ms), 0),
		        COALESCE(MAX(started_ms), 0)
		 FROM sessions WHERE game_id = ?`,
		EndGameOver, gameID,
	).Scan(&stats.Sessions, &stats.GameOvers, &totalMS, &longestMS, &lastMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.TotalPlay = time.Duration(totalMS) * time.Millisecond
	stats.Longest = time.Duration(longestMS) * time.Millisecond
	if stats.Sessions > 0 {
		stats.LastPlayed = time.UnixMilli(lastMS)
	}
	return stats, nil
}

// ClearHistory deletes all sessions of a game.
func (s *Store) ClearHistory(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
