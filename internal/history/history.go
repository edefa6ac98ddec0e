package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit is how many recent searches the dropdown shows
const DefaultLimit = 10

// Entry is one remembered search input
type Entry struct {
	GameName   string    `json:"gameName"`
	TagLine    string    `json:"tagLine"`
	Platform   string    `json:"platform"`
	SearchedAt time.Time `json:"searchedAt"`
}

// Store keeps recent searches in a local SQLite file
type Store struct {
	db *sql.DB
}

// Open creates the database file (and its directory) if needed
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// modernc sqlite serializes writes; one connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// init creates the schema
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS searches (
			game_name   TEXT NOT NULL,
			tag_line    TEXT NOT NULL,
			platform    TEXT NOT NULL,
			searched_at INTEGER NOT NULL,
			PRIMARY KEY (game_name, tag_line, platform)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Record upserts a search, moving it to the top of the recent list
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.SearchedAt.IsZero() {
		e.SearchedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (game_name, tag_line, platform, searched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (game_name, tag_line, platform)
		DO UPDATE SET searched_at = excluded.searched_at
	`, e.GameName, e.TagLine, e.Platform, e.SearchedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Recent returns up to limit searches, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT game_name, tag_line, platform, searched_at
		FROM searches
		ORDER BY searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var millis int64
		if err := rows.Scan(&e.GameName, &e.TagLine, &e.Platform, &millis); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		e.SearchedAt = time.UnixMilli(millis)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all remembered searches
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM searches")
	return err
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}
