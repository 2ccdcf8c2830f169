// Package reconcile computes the three-way diff between the external asset
// list and the maintained catalog.
package reconcile

import (
	"sort"

	"github.com/google/uuid"

	"github.com/agenthands/iconcat/internal/core/derive"
	"github.com/agenthands/iconcat/internal/core/integrity"
	"github.com/agenthands/iconcat/internal/core/model"
)

// Engine reconciles an external asset snapshot against catalog entries. It
// is read-only with respect to both inputs; persisting any of the diff is a
// human-reviewed step elsewhere.
type Engine struct {
	deriver *derive.Deriver
}

func NewEngine(deriver *derive.Deriver) *Engine {
	return &Engine{deriver: deriver}
}

// Reconcile derives a canonical key for every external asset and diffs the
// result against the raw catalog entry list.
//
// The catalog is checked for duplicate keys first; a non-empty report aborts
// the run with a *integrity.DuplicateKeyError, since shadowed keys would
// make every downstream difference spurious. Per-asset derivation failures
// are soft: they land in the result's Issues and the diff covers the rest.
func (e *Engine) Reconcile(paths []string, entries []model.Entry) (*model.DiffResult, error) {
	// 1. Gate on catalog integrity.
	if reports := integrity.CheckDuplicates(entries); len(reports) > 0 {
		return nil, &integrity.DuplicateKeyError{Reports: reports}
	}

	result := &model.DiffResult{RunID: uuid.New().String()}

	// 2. Derive the external key set.
	external := make(map[string]derive.Derived, len(paths))
	for _, path := range paths {
		derived, err := e.deriver.DerivePath(path)
		if err != nil {
			result.Issues = append(result.Issues, model.AssetIssue{Path: path, Reason: err.Error()})
			continue
		}
		if prior, ok := external[derived.Key]; ok {
			// Two assets collapsing onto one key would shadow each other the
			// same way duplicate catalog keys do. Keep the first, surface
			// the second.
			result.Issues = append(result.Issues, model.AssetIssue{
				Path:   path,
				Reason: "derived key " + derived.Key + " collides with " + prior.Path,
			})
			continue
		}
		external[derived.Key] = derived
	}

	catalog := make(map[string]model.Entry, len(entries))
	for _, entry := range entries {
		catalog[entry.Key] = entry
	}

	// 3. Added: external keys the catalog has never seen.
	for key, derived := range external {
		if _, ok := catalog[key]; !ok {
			result.Added = append(result.Added, model.AddedAsset{
				Path:        derived.Path,
				Key:         key,
				DisplayName: derived.DisplayName,
				Category:    derived.Category,
			})
		}
	}

	// 4. Removed and changed. Manually curated entries are exempt from both:
	//    they have no external asset to disagree with.
	for _, entry := range entries {
		if entry.IsManual() {
			continue
		}
		derived, ok := external[entry.Key]
		if !ok {
			result.Removed = append(result.Removed, model.RemovedEntry{
				Key:        entry.Key,
				Category:   entry.Category,
				SourcePath: entry.SourcePath,
			})
			continue
		}
		if derived.Path != entry.SourcePath {
			result.Changed = append(result.Changed, model.ChangedEntry{
				Key:      entry.Key,
				Category: entry.Category,
				OldPath:  entry.SourcePath,
				NewPath:  derived.Path,
			})
		}
	}

	// 5. Deterministic ordering: category rank, then key.
	sort.Slice(result.Added, func(i, j int) bool {
		a, b := result.Added[i], result.Added[j]
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}
		return a.Key < b.Key
	})
	sort.Slice(result.Removed, func(i, j int) bool {
		a, b := result.Removed[i], result.Removed[j]
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}
		return a.Key < b.Key
	})
	sort.Slice(result.Changed, func(i, j int) bool {
		a, b := result.Changed[i], result.Changed[j]
		if a.Category.Rank() != b.Category.Rank() {
			return a.Category.Rank() < b.Category.Rank()
		}
		return a.Key < b.Key
	})
	sort.Slice(result.Issues, func(i, j int) bool {
		return result.Issues[i].Path < result.Issues[j].Path
	})

	result.Counts = model.DiffCounts{
		External: len(paths),
		Catalog:  len(entries),
		Added:    len(result.Added),
		Removed:  len(result.Removed),
		Changed:  len(result.Changed),
		Issues:   len(result.Issues),
	}
	return result, nil
}
