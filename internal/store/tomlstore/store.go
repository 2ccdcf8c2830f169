// Package tomlstore persists the catalog as a human-edited TOML file. Each
// entry is one [[shapes]] table, so the file keeps definition order and can
// carry duplicate keys for the integrity checker to find.
package tomlstore

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/agenthands/iconcat/internal/core/model"
	"github.com/agenthands/iconcat/internal/store"
)

type catalogFile struct {
	Shapes []model.Entry `toml:"shapes"`
}

type Store struct {
	path string
}

func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	return &Store{path: path}, nil
}

func (s *Store) LoadEntries(ctx context.Context) ([]model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file is an empty catalog, not an error: first runs
			// start from nothing.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog '%s': %w", s.path, err)
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog TOML: %w", err)
	}
	return file.Shapes, nil
}

func (s *Store) SaveEntries(ctx context.Context, entries []model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := toml.Marshal(catalogFile{Shapes: entries})
	if err != nil {
		return fmt.Errorf("failed to encode catalog TOML: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalog '%s': %w", s.path, err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

var _ store.CatalogStore = (*Store)(nil)
