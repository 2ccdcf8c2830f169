package derive

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/agenthands/iconcat/internal/config"
	"github.com/agenthands/iconcat/internal/core/model"
)

// Derived is the canonical identity of one asset.
type Derived struct {
	Path        string
	Folder      string
	Key         string
	DisplayName string
	Category    model.Category
}

// Deriver turns asset filenames into canonical keys, display names and
// semantic categories. It is pure: the same filename and tables always
// produce the same output, which is what keeps diffs stable across runs.
type Deriver struct {
	folderCategories  map[string]model.Category
	categoryOverrides map[string]model.Category
	pluralExceptions  []string
	invariants        map[string]bool
}

// NewDeriver builds a Deriver from the configured tables. Category names in
// the tables are validated against the fixed enumeration up front so a typo
// in config fails loudly instead of producing a junk category.
func NewDeriver(tables config.Tables) (*Deriver, error) {
	d := &Deriver{
		folderCategories:  make(map[string]model.Category, len(tables.FolderCategories)),
		categoryOverrides: make(map[string]model.Category, len(tables.CategoryOverrides)),
		pluralExceptions:  make([]string, 0, len(tables.PluralExceptions)),
		invariants:        make(map[string]bool, len(tables.InvariantWords)),
	}

	for folder, name := range tables.FolderCategories {
		category := model.Category(name)
		if !category.Valid() {
			return nil, fmt.Errorf("folder_categories[%q]: unknown category %q", folder, name)
		}
		d.folderCategories[strings.ToLower(folder)] = category
	}
	for filename, name := range tables.CategoryOverrides {
		category := model.Category(name)
		if !category.Valid() {
			return nil, fmt.Errorf("category_overrides[%q]: unknown category %q", filename, name)
		}
		d.categoryOverrides[filename] = category
	}
	for _, exception := range tables.PluralExceptions {
		d.pluralExceptions = append(d.pluralExceptions, strings.ToLower(exception))
	}
	for _, word := range tables.InvariantWords {
		d.invariants[strings.ToLower(word)] = true
	}

	return d, nil
}

// DerivePath decomposes a raw asset path and derives its canonical identity.
func (d *Deriver) DerivePath(path string) (Derived, error) {
	decomposed, err := DecomposePath(path)
	if err != nil {
		return Derived{}, err
	}
	derived, err := d.DeriveBase(decomposed.Folder, decomposed.Base)
	if err != nil {
		return Derived{}, err
	}
	derived.Path = path
	return derived, nil
}

// DeriveBase derives the canonical identity from a category folder and a
// base filename (underscore-delimited words, no extension).
func (d *Deriver) DeriveBase(folder, base string) (Derived, error) {
	words, err := tokenize(base)
	if err != nil {
		return Derived{}, err
	}

	// 1. Display name: underscores become spaces, casing untouched.
	displayName := strings.ReplaceAll(base, "_", " ")

	// 2. Key: words re-joined with the trailing word singularized, unless
	//    the filename is an official plural name.
	if !d.isPluralException(displayName) {
		last := len(words) - 1
		words[last] = Singularize(words[last], d.invariants)
	}
	key := strings.Join(words, "")

	// 3. Category: exact-filename override wins over the folder table.
	category := d.resolveCategory(folder, base)

	return Derived{
		Folder:      folder,
		Key:         key,
		DisplayName: displayName,
		Category:    category,
	}, nil
}

func (d *Deriver) isPluralException(displayName string) bool {
	name := strings.ToLower(displayName)
	for _, exception := range d.pluralExceptions {
		if name == exception || strings.HasPrefix(name, exception+" ") {
			return true
		}
	}
	return false
}

func (d *Deriver) resolveCategory(folder, base string) model.Category {
	if category, ok := d.categoryOverrides[base]; ok {
		return category
	}
	if category, ok := d.folderCategories[strings.ToLower(folder)]; ok {
		return category
	}
	// Unmapped folder: trust it when it already names a category.
	if category := model.Category(strings.ToLower(folder)); category.Valid() {
		return category
	}
	return model.CategoryOther
}

func tokenize(base string) ([]string, error) {
	if strings.TrimSpace(base) == "" {
		return nil, &DerivationError{Filename: base, Reason: "empty filename"}
	}

	var words []string
	hasAlnum := false
	for _, word := range strings.Split(base, "_") {
		if word == "" {
			continue
		}
		words = append(words, word)
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				hasAlnum = true
				break
			}
		}
	}

	if len(words) == 0 {
		return nil, &DerivationError{Filename: base, Reason: "no words between underscores"}
	}
	if !hasAlnum {
		return nil, &DerivationError{Filename: base, Reason: "no alphanumeric characters"}
	}
	return words, nil
}
