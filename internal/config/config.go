package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SourceConfig locates the external asset repository. The fetch layer lists
// the git tree at Ref and keeps blobs under PathPrefix ending in .svg.
type SourceConfig struct {
	Owner      string `toml:"owner"`
	Repo       string `toml:"repo"`
	Ref        string `toml:"ref"`
	PathPrefix string `toml:"path_prefix"`
}

// Tables holds the derivation configuration. All three tables are data, not
// code: new exceptions are added here, never as branches in the deriver.
type Tables struct {
	// FolderCategories maps a physical asset folder to a semantic category.
	FolderCategories map[string]string `toml:"folder_categories"`
	// PluralExceptions lists official product names (space-delimited form)
	// whose trailing word must stay plural. An entry matches a filename
	// exactly or as a word-boundary prefix, case-insensitively.
	PluralExceptions []string `toml:"plural_exceptions"`
	// CategoryOverrides forces a category for an exact filename, taking
	// precedence over the folder-derived category.
	CategoryOverrides map[string]string `toml:"category_overrides"`
	// InvariantWords extends the built-in list of words singularization must
	// never touch (e.g. "kubernetes").
	InvariantWords []string `toml:"invariant_words"`
}

type Config struct {
	Source SourceConfig `toml:"source"`
	Tables Tables       `toml:"tables"`
}

// Default returns the built-in configuration. The tables cover the Azure
// icon taxonomy the catalog was seeded from; a config file overlays them.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Owner:      "jgraph",
			Repo:       "drawio",
			Ref:        "dev",
			PathPrefix: "src/main/webapp/img/lib/azure2/",
		},
		Tables: Tables{
			FolderCategories: map[string]string{
				"compute":               "compute",
				"containers":            "containers",
				"networking":            "network",
				"storage":               "storage",
				"databases":             "database",
				"web":                   "web",
				"security":              "security",
				"identity":              "identity",
				"integration":           "integration",
				"ai_machine_learning":   "ai",
				"analytics":             "analytics",
				"devops":                "devops",
				"management_governance": "management",
				"monitor":               "management",
				"iot":                   "iot",
				"mixed_reality":         "mixed_reality",
				"general":               "general",
				"azure_ecosystem":       "other",
				"blockchain":            "other",
				"migrate":               "other",
				"app_services":          "web",
				"mobile":                "web",
				"other":                 "other",
			},
			PluralExceptions: []string{
				"App Services",
				"Analysis Services",
				"Azure Media Services",
				"Bot Services",
				"Cognitive Services",
				"Communication Services",
				"Domain Services",
				"External Identities",
				"Media Services",
				"Recovery Services",
				"Azure Files",
			},
			CategoryOverrides: map[string]string{
				// Physically filed under networking, semantically compute.
				"Spot_VM":   "compute",
				"Spot_VMSS": "compute",
				// General-folder assets that belong to a real domain.
				"Backup_Center": "management",
			},
		},
	}
}

// Load reads a TOML config file and overlays it on the defaults. Scalar
// fields replace defaults only when set; tables merge key by key so a small
// file can add one exception without restating the whole taxonomy.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var overlay Config
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg := Default()
	cfg.merge(&overlay)
	return cfg, nil
}

func (c *Config) merge(overlay *Config) {
	if overlay.Source.Owner != "" {
		c.Source.Owner = overlay.Source.Owner
	}
	if overlay.Source.Repo != "" {
		c.Source.Repo = overlay.Source.Repo
	}
	if overlay.Source.Ref != "" {
		c.Source.Ref = overlay.Source.Ref
	}
	if overlay.Source.PathPrefix != "" {
		c.Source.PathPrefix = overlay.Source.PathPrefix
	}

	for folder, category := range overlay.Tables.FolderCategories {
		c.Tables.FolderCategories[folder] = category
	}
	for filename, category := range overlay.Tables.CategoryOverrides {
		c.Tables.CategoryOverrides[filename] = category
	}
	c.Tables.PluralExceptions = append(c.Tables.PluralExceptions, overlay.Tables.PluralExceptions...)
	c.Tables.InvariantWords = append(c.Tables.InvariantWords, overlay.Tables.InvariantWords...)
}
