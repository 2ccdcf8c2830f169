// Package sqlite provides a SQLite-backed catalog store for service
// deployments.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/agenthands/iconcat/internal/core/model"
	"github.com/agenthands/iconcat/internal/store"
)

// The key column is deliberately not unique: the store must round-trip a
// catalog containing duplicate keys so the integrity checker can report
// them. Authored order is the rowid order.
const schema = `
CREATE TABLE IF NOT EXISTS shapes (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	key          TEXT NOT NULL,
	display_name TEXT NOT NULL,
	category     TEXT NOT NULL,
	source_path  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_shapes_key ON shapes(key);
`

type Store struct {
	sqlDB *sql.DB
}

// Open opens (and if needed creates) a SQLite catalog store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) LoadEntries(ctx context.Context) ([]model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT key, display_name, category, source_path
		   FROM shapes
		  ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var entry model.Entry
		var category string
		if err := rows.Scan(&entry.Key, &entry.DisplayName, &category, &entry.SourcePath); err != nil {
			return nil, fmt.Errorf("load entries: %w", err)
		}
		entry.Category = model.Category(category)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return entries, nil
}

func (s *Store) SaveEntries(ctx context.Context, entries []model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shapes`); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	for _, entry := range entries {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO shapes (key, display_name, category, source_path)
			 VALUES (?, ?, ?, ?)`,
			entry.Key,
			entry.DisplayName,
			string(entry.Category),
			entry.SourcePath,
		)
		if err != nil {
			return fmt.Errorf("save entry %q: %w", entry.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

var _ store.CatalogStore = (*Store)(nil)
