// Package store defines catalog persistence. Implementations must return
// entries in authored order, including duplicate keys, because the integrity
// checker operates on the raw list before any map absorbs it.
package store

import (
	"context"
	"errors"

	"github.com/agenthands/iconcat/internal/core/model"
)

// ErrNotFound is returned when a looked-up key has no entry.
var ErrNotFound = errors.New("catalog entry not found")

type CatalogStore interface {
	// LoadEntries returns every entry in original definition order.
	LoadEntries(ctx context.Context) ([]model.Entry, error)
	// SaveEntries replaces the persisted catalog with the given list.
	SaveEntries(ctx context.Context, entries []model.Entry) error
	Close(ctx context.Context) error
}
