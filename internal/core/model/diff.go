package model

// AddedAsset is an external asset with no catalog entry yet. The derived
// fields are included so a reviewer can paste a ready-made entry.
type AddedAsset struct {
	Path        string   `json:"path"`
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Category    Category `json:"category"`
}

// RemovedEntry is a catalog entry whose source asset no longer exists
// externally.
type RemovedEntry struct {
	Key        string   `json:"key"`
	Category   Category `json:"category"`
	SourcePath string   `json:"source_path"`
}

// ChangedEntry is a catalog entry whose derived key still exists externally
// but under a different path (folder moved, casing changed).
type ChangedEntry struct {
	Key      string   `json:"key"`
	Category Category `json:"category"`
	OldPath  string   `json:"old_path"`
	NewPath  string   `json:"new_path"`
}

// AssetIssue is a per-asset soft failure collected during reconciliation.
// Issues never abort the run; the diff covers the remaining valid assets.
type AssetIssue struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// DiffCounts summarizes a reconciliation run.
type DiffCounts struct {
	External int `json:"external"`
	Catalog  int `json:"catalog"`
	Added    int `json:"added"`
	Removed  int `json:"removed"`
	Changed  int `json:"changed"`
	Issues   int `json:"issues"`
}

// DiffResult is the outcome of reconciling the external asset list against
// the catalog. The three sequences are disjoint and sorted by category rank
// then key so output is stable across runs.
type DiffResult struct {
	RunID   string         `json:"run_id"`
	Added   []AddedAsset   `json:"added"`
	Removed []RemovedEntry `json:"removed"`
	Changed []ChangedEntry `json:"changed"`
	Issues  []AssetIssue   `json:"issues,omitempty"`
	Counts  DiffCounts     `json:"counts"`
}

// InSync reports whether the external list and the catalog agree exactly.
func (d *DiffResult) InSync() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}
