package core

import (
	"context"
	"fmt"

	"github.com/agenthands/iconcat/internal/core/derive"
	"github.com/agenthands/iconcat/internal/core/integrity"
	"github.com/agenthands/iconcat/internal/core/model"
	"github.com/agenthands/iconcat/internal/core/reconcile"
	"github.com/agenthands/iconcat/internal/store"
)

// Catalog ties the persisted entry list to the derivation and
// reconciliation engines. All operations read a fresh snapshot from the
// store, so concurrent reconciliation runs are independent.
type Catalog struct {
	Store   store.CatalogStore
	Deriver *derive.Deriver
	Engine  *reconcile.Engine
}

func NewCatalog(s store.CatalogStore, deriver *derive.Deriver) *Catalog {
	return &Catalog{
		Store:   s,
		Deriver: deriver,
		Engine:  reconcile.NewEngine(deriver),
	}
}

// Entries returns the raw catalog in authored order.
func (c *Catalog) Entries(ctx context.Context) ([]model.Entry, error) {
	return c.Store.LoadEntries(ctx)
}

// Lookup returns the entry for a canonical key. Like any keyed lookup it
// sees the last definition when the catalog carries duplicates; run
// CheckIntegrity to find out whether that is happening.
func (c *Catalog) Lookup(ctx context.Context, key string) (model.Entry, error) {
	entries, err := c.Store.LoadEntries(ctx)
	if err != nil {
		return model.Entry{}, err
	}

	found := false
	var match model.Entry
	for _, entry := range entries {
		if entry.Key == key {
			match = entry
			found = true
		}
	}
	if !found {
		return model.Entry{}, fmt.Errorf("lookup %q: %w", key, store.ErrNotFound)
	}
	return match, nil
}

// CheckIntegrity reports every duplicated key in the catalog.
func (c *Catalog) CheckIntegrity(ctx context.Context) ([]model.DuplicateKeyReport, error) {
	entries, err := c.Store.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return integrity.CheckDuplicates(entries), nil
}

// Reconcile diffs an external asset path list against the catalog. It
// returns a *integrity.DuplicateKeyError when the catalog fails the
// duplicate gate.
func (c *Catalog) Reconcile(ctx context.Context, paths []string) (*model.DiffResult, error) {
	entries, err := c.Store.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return c.Engine.Reconcile(paths, entries)
}
