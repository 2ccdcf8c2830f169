// Package integrity detects structural defects in the raw catalog that a
// keyed lookup structure would silently absorb.
package integrity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agenthands/iconcat/internal/core/model"
)

// DuplicateKeyError aggregates every duplicated key in the catalog. It is a
// hard failure: any diff computed against a catalog with shadowed keys is
// unreliable, so reconciliation refuses to run.
type DuplicateKeyError struct {
	Reports []model.DuplicateKeyReport
}

func (e *DuplicateKeyError) Error() string {
	keys := make([]string, len(e.Reports))
	for i, r := range e.Reports {
		keys[i] = r.Key
	}
	return fmt.Sprintf("catalog has %d duplicate key(s): %s", len(e.Reports), strings.Join(keys, ", "))
}

// CheckDuplicates scans the raw ordered entry list for keys defined more
// than once. It must receive the list as authored, before any map has
// swallowed earlier occurrences; positions are indexes into that list so a
// human can find and resolve each definition.
func CheckDuplicates(entries []model.Entry) []model.DuplicateKeyReport {
	occurrences := make(map[string][]model.Occurrence)
	for i, entry := range entries {
		occurrences[entry.Key] = append(occurrences[entry.Key], model.Occurrence{
			Position:   i,
			SourcePath: entry.SourcePath,
		})
	}

	var reports []model.DuplicateKeyReport
	for key, occs := range occurrences {
		if len(occs) > 1 {
			reports = append(reports, model.DuplicateKeyReport{Key: key, Occurrences: occs})
		}
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Key < reports[j].Key
	})
	return reports
}
