// Package storage persists best scores and score history. The SQLite
// store uses the pure-Go modernc.org/sqlite driver so the binary needs no
// CGO; a Redis store lets several SSH hosts share one leaderboard.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite database holding the key/value table behind best
// scores and the full score history.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game in the history.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the history of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	LowScore   int
	AvgScore   float64
	LastPlayed time.Time
}

const timeLayout = "2006-01-02 15:04:05"

// Open creates or opens the database at dbPath, creating parent
// directories and running migrations. A leading ~ is expanded.
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
	// SSH sessions write from many goroutines; sqlite wants one writer.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// SaveScore appends a finished game to the history and returns its ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit entries for gameID. Games where fewer
// is better pass ascending.
func (s *Store) TopScores(gameID string, limit int, ascending bool) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score `+order+`, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearScores deletes the history and the best score of gameID.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM kv WHERE key = ?", gameID+"-best"); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	return tx.Commit()
}

// Stats returns aggregated history for gameID.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MIN(score), 0),
		        COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.LowScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllStats returns aggregated history for every game that has been played.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), MIN(score), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.LowScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both driver-decoded times and raw sqlite text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
