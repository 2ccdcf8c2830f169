package derive

import "strings"

const assetExtension = ".svg"

// Decomposed is the result of splitting a raw asset path.
type Decomposed struct {
	// Folder is the category folder, the first path segment.
	Folder string
	// Base is the filename without its extension.
	Base string
}

// DecomposePath splits a raw asset path of the form <folder>/<file>.svg into
// its category folder and base filename. Nested folders are tolerated: the
// first segment is the category folder, the last the filename. Malformed
// paths are rejected, never guessed at.
func DecomposePath(path string) (Decomposed, error) {
	if !strings.Contains(path, "/") {
		return Decomposed{}, &MalformedPathError{Path: path, Reason: "no folder separator"}
	}

	segments := strings.Split(path, "/")
	folder := segments[0]
	filename := segments[len(segments)-1]

	if folder == "" {
		return Decomposed{}, &MalformedPathError{Path: path, Reason: "empty folder segment"}
	}
	if !strings.HasSuffix(strings.ToLower(filename), assetExtension) {
		return Decomposed{}, &MalformedPathError{Path: path, Reason: "not an .svg asset"}
	}

	base := filename[:len(filename)-len(assetExtension)]
	if base == "" {
		return Decomposed{}, &MalformedPathError{Path: path, Reason: "empty filename"}
	}

	return Decomposed{Folder: folder, Base: base}, nil
}
