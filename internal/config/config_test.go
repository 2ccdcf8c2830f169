package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "jgraph", cfg.Source.Owner)
	assert.Equal(t, "src/main/webapp/img/lib/azure2/", cfg.Source.PathPrefix)
	assert.Equal(t, "network", cfg.Tables.FolderCategories["networking"])
	assert.Equal(t, "compute", cfg.Tables.CategoryOverrides["Spot_VM"])
	assert.Contains(t, cfg.Tables.PluralExceptions, "Cognitive Services")
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[source]
ref = "v1.2.3"

[tables]
plural_exceptions = ["Durable Functions"]

[tables.folder_categories]
preview = "other"

[tables.category_overrides]
Spot_VM = "devops"
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)

	// Overridden values.
	assert.Equal(t, "v1.2.3", cfg.Source.Ref)
	assert.Equal(t, "devops", cfg.Tables.CategoryOverrides["Spot_VM"])

	// Defaults retained around them.
	assert.Equal(t, "jgraph", cfg.Source.Owner)
	assert.Equal(t, "network", cfg.Tables.FolderCategories["networking"])
	assert.Equal(t, "other", cfg.Tables.FolderCategories["preview"])
	assert.Contains(t, cfg.Tables.PluralExceptions, "Durable Functions")
	assert.Contains(t, cfg.Tables.PluralExceptions, "Cognitive Services")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
