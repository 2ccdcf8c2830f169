package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/iconcat/internal/config"
	"github.com/agenthands/iconcat/internal/core"
	"github.com/agenthands/iconcat/internal/core/derive"
	"github.com/agenthands/iconcat/internal/core/integrity"
	"github.com/agenthands/iconcat/internal/fetch"
	"github.com/agenthands/iconcat/internal/store"
	"github.com/agenthands/iconcat/internal/store/sqlite"
	"github.com/agenthands/iconcat/internal/store/tomlstore"
)

// Lister is the fetch boundary; the engine only needs the path list.
type Lister interface {
	ListAssets(ctx context.Context) ([]string, error)
}

type Server struct {
	Catalog *core.Catalog
	Fetcher Lister
}

// NewServer wires the catalog service from environment configuration:
// CONFIG_PATH for the derivation tables, CATALOG_DB (SQLite) or
// CATALOG_FILE (TOML) for persistence, GITHUB_TOKEN for the fetch layer.
func NewServer() *Server {
	cfg := config.Default()
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}

	var (
		catalogStore store.CatalogStore
		err          error
	)
	if dbPath := os.Getenv("CATALOG_DB"); dbPath != "" {
		catalogStore, err = sqlite.Open(dbPath)
	} else {
		filePath := os.Getenv("CATALOG_FILE")
		if filePath == "" {
			filePath = "catalog.toml"
		}
		catalogStore, err = tomlstore.Open(filePath)
	}
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}

	deriver, err := derive.NewDeriver(cfg.Tables)
	if err != nil {
		log.Fatalf("Failed to build deriver: %v", err)
	}

	return &Server{
		Catalog: core.NewCatalog(catalogStore, deriver),
		Fetcher: fetch.NewClient(cfg.Source, os.Getenv("GITHUB_TOKEN")),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/shapes", s.ListShapes)
	r.GET("/shapes/:key", s.GetShape)
	r.GET("/duplicates", s.Duplicates)
	r.POST("/reconcile", s.Reconcile)

	return r
}

func (s *Server) ListShapes(c *gin.Context) {
	entries, err := s.Catalog.Entries(c.Request.Context())
	if err != nil {
		log.Printf("Failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shapes": entries, "count": len(entries)})
}

func (s *Server) GetShape(c *gin.Context) {
	entry, err := s.Catalog.Lookup(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown shape key"})
			return
		}
		log.Printf("Failed to look up shape: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up shape"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) Duplicates(c *gin.Context) {
	reports, err := s.Catalog.CheckIntegrity(c.Request.Context())
	if err != nil {
		log.Printf("Failed to check catalog integrity: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check catalog integrity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"duplicates": reports, "count": len(reports)})
}

type ReconcileRequest struct {
	// Paths lets a caller reconcile against an explicit snapshot. When
	// empty, the server fetches the configured external source.
	Paths []string `json:"paths"`
}

func (s *Server) Reconcile(c *gin.Context) {
	var req ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	paths := req.Paths
	if len(paths) == 0 {
		fetched, err := s.Fetcher.ListAssets(c.Request.Context())
		if err != nil {
			log.Printf("Failed to fetch external asset list: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch external asset list"})
			return
		}
		paths = fetched
	}

	diff, err := s.Catalog.Reconcile(c.Request.Context(), paths)
	if err != nil {
		var dupErr *integrity.DuplicateKeyError
		if errors.As(err, &dupErr) {
			c.JSON(http.StatusConflict, gin.H{
				"error":      "Catalog has duplicate keys; reconciliation refused",
				"duplicates": dupErr.Reports,
			})
			return
		}
		log.Printf("Failed to reconcile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile"})
		return
	}

	c.JSON(http.StatusOK, diff)
}
