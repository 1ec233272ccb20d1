// Package preference persists the one setting the dashboard keeps for each visitor:
// light or dark theme.
package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	themeKey = "theme"
)

// ParseTheme reads a stored value; anything other than "dark" is light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Dark() bool {
	return t == ThemeDark
}

// Store is the theme setting injected into the server, kept per visitor.
type Store interface {
	Theme(ctx context.Context, visitor string) (Theme, error)
	SetTheme(ctx context.Context, visitor string, t Theme) error
	Toggle(ctx context.Context, visitor string) (Theme, error)
}

// SQLiteStore keeps one preferences row per visitor.
type SQLiteStore struct {
	db *sql.DB

	// serializes Toggle's read-modify-write
	mu sync.Mutex
}

// Open opens (or creates) the SQLite file at path.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference database: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func themeKeyFor(visitor string) string {
	if visitor == "" {
		return themeKey
	}
	return themeKey + ":" + visitor
}

// Theme returns the visitor's stored theme, light when nothing is stored.
func (s *SQLiteStore) Theme(ctx context.Context, visitor string) (Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, themeKeyFor(visitor)).Scan(&value)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return ThemeLight, fmt.Errorf("failed to read theme preference: %w", err)
	}
	return ParseTheme(value), nil
}

func (s *SQLiteStore) SetTheme(ctx context.Context, visitor string, t Theme) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, themeKeyFor(visitor), string(t))
	if err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

// Toggle flips the visitor's theme and returns the new one.
func (s *SQLiteStore) Toggle(ctx context.Context, visitor string) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Theme(ctx, visitor)
	if err != nil {
		return current, err
	}
	next := current.Toggled()
	if err := s.SetTheme(ctx, visitor, next); err != nil {
		return current, err
	}
	return next, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
