package derive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposePath(t *testing.T) {
	d, err := DecomposePath("compute/Virtual_Machine.svg")
	assert.NoError(t, err)
	assert.Equal(t, "compute", d.Folder)
	assert.Equal(t, "Virtual_Machine", d.Base)
}

func TestDecomposePath_NestedFolders(t *testing.T) {
	// First segment is the category folder, last is the filename.
	d, err := DecomposePath("networking/gateways/VPN_Gateway.svg")
	assert.NoError(t, err)
	assert.Equal(t, "networking", d.Folder)
	assert.Equal(t, "VPN_Gateway", d.Base)
}

func TestDecomposePath_Malformed(t *testing.T) {
	cases := []string{
		"Virtual_Machine.svg",      // no folder separator
		"compute/Virtual_Machine",  // no extension
		"compute/Storage.png",      // wrong extension
		"/Virtual_Machine.svg",     // empty folder
		"compute/.svg",             // empty filename
	}

	for _, path := range cases {
		_, err := DecomposePath(path)
		var malformed *MalformedPathError
		assert.Error(t, err, path)
		assert.True(t, errors.As(err, &malformed), path)
		assert.Equal(t, path, malformed.Path)
	}
}

func TestDecomposePath_CaseInsensitiveExtension(t *testing.T) {
	d, err := DecomposePath("storage/Disk.SVG")
	assert.NoError(t, err)
	assert.Equal(t, "Disk", d.Base)
}
