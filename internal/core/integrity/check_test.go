package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/iconcat/internal/core/model"
)

func TestCheckDuplicates_CleanCatalog(t *testing.T) {
	entries := []model.Entry{
		{Key: "VirtualMachine", Category: model.CategoryCompute, SourcePath: "compute/Virtual_Machine.svg"},
		{Key: "StorageAccount", Category: model.CategoryStorage, SourcePath: "storage/Storage_Accounts.svg"},
	}

	assert.Empty(t, CheckDuplicates(entries))
}

func TestCheckDuplicates_ReportsAllOccurrences(t *testing.T) {
	entries := []model.Entry{
		{Key: "Foo", DisplayName: "A", Category: model.CategoryOther, SourcePath: "x/Foo.svg"},
		{Key: "Bar", DisplayName: "B", Category: model.CategoryOther, SourcePath: "x/Bar.svg"},
		{Key: "Foo", DisplayName: "C", Category: model.CategoryOther, SourcePath: "y/Foo.svg"},
	}

	reports := CheckDuplicates(entries)
	assert.Len(t, reports, 1)
	assert.Equal(t, "Foo", reports[0].Key)
	assert.Equal(t, []model.Occurrence{
		{Position: 0, SourcePath: "x/Foo.svg"},
		{Position: 2, SourcePath: "y/Foo.svg"},
	}, reports[0].Occurrences)
}

func TestCheckDuplicates_SortedByKey(t *testing.T) {
	entries := []model.Entry{
		{Key: "Zeta", SourcePath: "a/Zeta.svg"},
		{Key: "Alpha", SourcePath: "a/Alpha.svg"},
		{Key: "Zeta", SourcePath: "b/Zeta.svg"},
		{Key: "Alpha", SourcePath: "b/Alpha.svg"},
	}

	reports := CheckDuplicates(entries)
	assert.Len(t, reports, 2)
	assert.Equal(t, "Alpha", reports[0].Key)
	assert.Equal(t, "Zeta", reports[1].Key)
}

func TestCheckDuplicates_SharedSourcePathIsFine(t *testing.T) {
	// Aliases pointing at the same asset are legitimate; only shared keys
	// are a defect.
	entries := []model.Entry{
		{Key: "VM", SourcePath: "compute/Virtual_Machine.svg"},
		{Key: "VirtualMachine", SourcePath: "compute/Virtual_Machine.svg"},
	}

	assert.Empty(t, CheckDuplicates(entries))
}

func TestDuplicateKeyError_Message(t *testing.T) {
	err := &DuplicateKeyError{Reports: []model.DuplicateKeyReport{
		{Key: "Foo"}, {Key: "Bar"},
	}}
	assert.Contains(t, err.Error(), "2 duplicate key(s)")
	assert.Contains(t, err.Error(), "Foo")
	assert.Contains(t, err.Error(), "Bar")
}
