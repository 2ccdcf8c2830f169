package core

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/iconcat/internal/config"
	"github.com/agenthands/iconcat/internal/core/derive"
	"github.com/agenthands/iconcat/internal/core/model"
	"github.com/agenthands/iconcat/internal/store"
	"github.com/agenthands/iconcat/internal/store/tomlstore"
)

func newTestCatalog(t *testing.T, entries []model.Entry) *Catalog {
	t.Helper()

	s, err := tomlstore.Open(filepath.Join(t.TempDir(), "catalog.toml"))
	assert.NoError(t, err)
	if entries != nil {
		assert.NoError(t, s.SaveEntries(context.Background(), entries))
	}

	deriver, err := derive.NewDeriver(config.Default().Tables)
	assert.NoError(t, err)
	return NewCatalog(s, deriver)
}

func TestLookup(t *testing.T) {
	catalog := newTestCatalog(t, []model.Entry{
		{Key: "VirtualMachine", DisplayName: "Virtual Machine", Category: model.CategoryCompute, SourcePath: "compute/Virtual_Machine.svg"},
	})

	entry, err := catalog.Lookup(context.Background(), "VirtualMachine")
	assert.NoError(t, err)
	assert.Equal(t, "Virtual Machine", entry.DisplayName)

	_, err = catalog.Lookup(context.Background(), "Nope")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestLookup_DuplicateKeySeesLastDefinition(t *testing.T) {
	// This is exactly the hazard CheckIntegrity exists to expose.
	catalog := newTestCatalog(t, []model.Entry{
		{Key: "Foo", DisplayName: "First", Category: model.CategoryOther, SourcePath: "x/Foo.svg"},
		{Key: "Foo", DisplayName: "Second", Category: model.CategoryOther, SourcePath: "y/Foo.svg"},
	})

	entry, err := catalog.Lookup(context.Background(), "Foo")
	assert.NoError(t, err)
	assert.Equal(t, "Second", entry.DisplayName)

	reports, err := catalog.CheckIntegrity(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestReconcile_EndToEnd(t *testing.T) {
	catalog := newTestCatalog(t, []model.Entry{
		{Key: "VirtualMachine", DisplayName: "Virtual Machine", Category: model.CategoryCompute, SourcePath: "compute/Virtual_Machine.svg"},
	})

	diff, err := catalog.Reconcile(context.Background(), []string{
		"compute/Virtual_Machine.svg",
		"storage/Storage_Accounts.svg",
	})
	assert.NoError(t, err)
	assert.Len(t, diff.Added, 1)
	assert.Equal(t, "storage/Storage_Accounts.svg", diff.Added[0].Path)
	assert.Empty(t, diff.Removed)
	assert.Empty(t, diff.Changed)
}
