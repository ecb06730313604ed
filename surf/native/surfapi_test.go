//go:build surfapi && (windows || linux || darwin)

package native

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsNonLibrary(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.dll"))
	assert.ErrorIs(t, err, ErrLibraryNotFound)

	p := filepath.Join(t.TempDir(), "surfapi.dll")
	require.NoError(t, os.WriteFile(p, []byte("not a shared object"), 0o644))
	_, err = Load(p)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAvailable)
}

func TestCString(t *testing.T) {
	b := cString("C:\\scans\\bone.sur")
	assert.Len(t, b, len("C:\\scans\\bone.sur")+1)
	assert.Zero(t, b[len(b)-1])
}
