package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
}

func rels(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		assert.True(t, filepath.IsAbs(p))
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(r)
	}
	return out
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"b.sur", "a.SUR", "notes.txt",
		"sub/c.sdf", "sub/deep/d.sur",
		"scratch/e.sur", "sub/tmp.sur",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".surfignore"), []byte("scratch/\ntmp.sur\n"), 0o644))

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "recursive with ignore",
			opts: Options{Extensions: []string{".sur", "sdf"}, IgnoreFile: ".surfignore", Recursive: true},
			want: []string{"a.SUR", "b.sur", "sub/c.sdf", "sub/deep/d.sur"},
		},
		{
			name: "top level only",
			opts: Options{Extensions: []string{".sur"}, IgnoreFile: ".surfignore"},
			want: []string{"a.SUR", "b.sur"},
		},
		{
			name: "no ignore file",
			opts: Options{Extensions: []string{".sur"}, Recursive: true},
			want: []string{"a.SUR", "b.sur", "scratch/e.sur", "sub/deep/d.sur", "sub/tmp.sur"},
		},
		{
			name: "missing ignore file is fine",
			opts: Options{Extensions: []string{".sdf"}, IgnoreFile: ".nothere", Recursive: true},
			want: []string{"sub/c.sdf"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Find(root, tt.opts)
			require.NoError(t, err)
			abs, _ := filepath.Abs(root)
			assert.Equal(t, tt.want, rels(t, abs, got))
		})
	}
}

func TestFind_Errors(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing"), Options{})
	assert.Error(t, err)

	root := t.TempDir()
	touch(t, root, "file.sur")
	_, err = Find(filepath.Join(root, "file.sur"), Options{})
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	exts := []string{".sur", "SDF"}
	assert.True(t, Match("/a/b.SUR", exts))
	assert.True(t, Match("x.sdf", exts))
	assert.False(t, Match("x.txt", exts))
	assert.False(t, Match("sur", exts))
}
