// Command reconcile diffs the external icon repository against the local
// catalog and prints a reviewable report. It never mutates the catalog.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/agenthands/iconcat/internal/config"
	"github.com/agenthands/iconcat/internal/core"
	"github.com/agenthands/iconcat/internal/core/derive"
	"github.com/agenthands/iconcat/internal/core/integrity"
	"github.com/agenthands/iconcat/internal/fetch"
	"github.com/agenthands/iconcat/internal/report"
	"github.com/agenthands/iconcat/internal/store"
	"github.com/agenthands/iconcat/internal/store/sqlite"
	"github.com/agenthands/iconcat/internal/store/tomlstore"
)

type flags struct {
	ConfigPath  string
	CatalogPath string
	DBPath      string
	PathsFile   string
	JSON        bool
}

func parseFlags() *flags {
	f := &flags{}

	pflag.StringVarP(&f.ConfigPath, "config", "c", "", "Path to a TOML config file overlaying the built-in tables.")
	pflag.StringVar(&f.CatalogPath, "catalog", "catalog.toml", "Path to the TOML catalog file.")
	pflag.StringVar(&f.DBPath, "db", "", "Use a SQLite catalog store at this path instead of the TOML file.")
	pflag.StringVar(&f.PathsFile, "paths-file", "", "Read the external asset list from a file (one path per line) instead of fetching.")
	pflag.BoolVar(&f.JSON, "json", false, "Emit the diff or duplicate report as JSON.")

	pflag.Usage = func() {
		fmt.Println("Usage: reconcile [flags]")
		fmt.Println("\nCompare the external icon repository against the shape catalog.")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()
	return f
}

func main() {
	f := parseFlags()
	ctx := context.Background()

	cfg := config.Default()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}

	var (
		catalogStore store.CatalogStore
		err          error
	)
	if f.DBPath != "" {
		catalogStore, err = sqlite.Open(f.DBPath)
	} else {
		catalogStore, err = tomlstore.Open(f.CatalogPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer catalogStore.Close(ctx)

	deriver, err := derive.NewDeriver(cfg.Tables)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	catalog := core.NewCatalog(catalogStore, deriver)

	paths, err := loadPaths(ctx, f, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	diff, err := catalog.Reconcile(ctx, paths)
	if err != nil {
		var dupErr *integrity.DuplicateKeyError
		if errors.As(err, &dupErr) {
			if f.JSON {
				out, _ := json.MarshalIndent(dupErr.Reports, "", "  ")
				fmt.Println(string(out))
			} else {
				fmt.Print(report.RenderDuplicates(dupErr.Reports))
			}
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if f.JSON {
		out, _ := json.MarshalIndent(diff, "", "  ")
		fmt.Println(string(out))
		return
	}
	fmt.Print(report.RenderDiff(diff))
}

func loadPaths(ctx context.Context, f *flags, cfg *config.Config) ([]string, error) {
	if f.PathsFile != "" {
		data, err := os.ReadFile(f.PathsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read paths file: %w", err)
		}
		var paths []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				paths = append(paths, line)
			}
		}
		return paths, nil
	}

	client := fetch.NewClient(cfg.Source, os.Getenv("GITHUB_TOKEN"))
	return client.ListAssets(ctx)
}
