//go:build !surfapi || !(windows || linux || darwin)

package native

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "libsurfapi.so")
	require.NoError(t, os.WriteFile(p, nil, 0o644))

	_, err := Load(p)
	assert.ErrorIs(t, err, ErrNotAvailable)

	_, err = Load(filepath.Join(t.TempDir(), "missing.so"))
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}
