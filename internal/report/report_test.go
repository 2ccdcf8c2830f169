package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/iconcat/internal/core/model"
)

func TestRenderDiff(t *testing.T) {
	diff := &model.DiffResult{
		RunID: "run-1",
		Added: []model.AddedAsset{
			{Path: "storage/Storage_Accounts.svg", Key: "StorageAccount", DisplayName: "Storage Accounts", Category: model.CategoryStorage},
		},
		Removed: []model.RemovedEntry{
			{Key: "ClassicVM", Category: model.CategoryCompute, SourcePath: "compute/Classic_VM.svg"},
		},
		Changed: []model.ChangedEntry{
			{Key: "VirtualMachine", Category: model.CategoryCompute, OldPath: "compute/Virtual_Machine.svg", NewPath: "general/Virtual_Machine.svg"},
		},
		Issues: []model.AssetIssue{
			{Path: "broken.svg", Reason: "no folder separator"},
		},
		Counts: model.DiffCounts{External: 2, Catalog: 2, Added: 1, Removed: 1, Changed: 1, Issues: 1},
	}

	out := RenderDiff(diff)
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "StorageAccount")
	assert.Contains(t, out, "ClassicVM")
	assert.Contains(t, out, "general/Virtual_Machine.svg")
	assert.Contains(t, out, "broken.svg")
	assert.Contains(t, out, "added=1 removed=1 changed=1 issues=1")
}

func TestRenderDiff_InSync(t *testing.T) {
	diff := &model.DiffResult{RunID: "run-2", Counts: model.DiffCounts{External: 3, Catalog: 3}}

	out := RenderDiff(diff)
	assert.Contains(t, out, "in sync")
}

func TestSummary(t *testing.T) {
	diff := &model.DiffResult{Counts: model.DiffCounts{External: 10, Catalog: 8, Added: 2}}
	assert.Equal(t, "external=10 catalog=8 added=2 removed=0 changed=0 issues=0", Summary(diff))
}

func TestRenderDuplicates(t *testing.T) {
	reports := []model.DuplicateKeyReport{
		{
			Key: "Foo",
			Occurrences: []model.Occurrence{
				{Position: 0, SourcePath: "x/Foo.svg"},
				{Position: 2, SourcePath: model.ManualSource},
			},
		},
	}

	out := RenderDuplicates(reports)
	assert.Contains(t, out, "Foo")
	assert.Contains(t, out, "entry #0: x/Foo.svg")
	assert.Contains(t, out, "entry #2: (manually curated)")
	assert.Contains(t, out, "refused")
}
