package model

// ManualSource marks an entry that was hand-authored with no corresponding
// external asset. Such entries are never auto-retired by reconciliation.
const ManualSource = ""

// Entry is one shape definition in the maintained catalog.
type Entry struct {
	Key         string   `json:"key" toml:"key"`
	DisplayName string   `json:"display_name" toml:"name"`
	Category    Category `json:"category" toml:"category"`
	SourcePath  string   `json:"source_path,omitempty" toml:"source_path,omitempty"`
}

// IsManual reports whether the entry carries the manually-curated sentinel
// instead of a real asset path.
func (e Entry) IsManual() bool {
	return e.SourcePath == ManualSource
}

// Occurrence is one position at which a key was defined in the raw catalog.
type Occurrence struct {
	Position   int    `json:"position"`
	SourcePath string `json:"source_path"`
}

// DuplicateKeyReport lists every definition of a key that appears more than
// once in the raw catalog. A plain map lookup would silently keep only the
// last one.
type DuplicateKeyReport struct {
	Key         string       `json:"key"`
	Occurrences []Occurrence `json:"occurrences"`
}
