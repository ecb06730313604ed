package catalog

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

func collectionNamed(name string, kind types.StudiableType) *types.Collection {
	return &types.Collection{
		Metadata: types.Metadata{
			Kind: kind, Name: name,
			Cols: 4, Rows: 3, ZMin: -5, ZMax: 9,
			Acquired: types.Timestamp{Year: 2021, Month: 6, Day: 1, Hour: 8, Minute: 30, Second: 0},
		},
		Comment: "comment of " + name,
		Points:  make([]int32, 12),
	}
}

// TestStoreIntegration exercises the libsql-backed catalog end to end.
func TestStoreIntegration(t *testing.T) {
	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "nested", "catalog.db")

	store, err := Open(dsn, zerolog.Nop())
	require.NoError(t, err)

	t.Run("Record", func(t *testing.T) {
		entries, err := store.Record("/data/run1/a.sur", []*types.Collection{
			collectionNamed("first", types.StudiableSurface),
			nil,
			collectionNamed("third", types.StudiableProfile),
		})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.NotEqual(t, uuid.Nil, entries[0].ID)
		assert.Equal(t, 1, entries[0].Object)
		assert.Equal(t, 3, entries[1].Object, "object index survives skipped entries")
	})

	t.Run("Get", func(t *testing.T) {
		entries, err := store.Record("/data/run1/b.sur", []*types.Collection{collectionNamed("bee", types.StudiableSurface)})
		require.NoError(t, err)

		got, err := store.Get(entries[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "bee", got.Name)
		assert.Equal(t, types.StudiableSurface, got.Kind)
		assert.Equal(t, int32(4), got.Cols)
		assert.Equal(t, int32(-5), got.ZMin)
		assert.Equal(t, "comment of bee", got.Comment)
		assert.Equal(t, types.Timestamp{Year: 2021, Month: 6, Day: 1, Hour: 8, Minute: 30}, got.Acquired)
		assert.True(t, entries[0].RecordedAt.Equal(got.RecordedAt))

		_, err = store.Get(uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("RecordReplaces", func(t *testing.T) {
		_, err := store.Record("/data/run1/b.sur", []*types.Collection{
			collectionNamed("bee2", types.StudiableSurface),
			collectionNamed("bee3", types.StudiableSurface),
		})
		require.NoError(t, err)
		got := store.ByPrefix("/data/run1/b.sur")
		require.Len(t, got, 2)
		assert.Equal(t, "bee2", got[0].Name)
	})

	t.Run("ListAndPrefix", func(t *testing.T) {
		_, err := store.Record("/data/run10/c.sur", []*types.Collection{collectionNamed("sea", types.StudiableSurface)})
		require.NoError(t, err)

		all, err := store.List()
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, "/data/run1/a.sur", all[0].Path)
		assert.Equal(t, "/data/run10/c.sur", all[4].Path)

		assert.Len(t, store.ByPrefix("/data/run1/"), 4)
		assert.Len(t, store.ByPrefix("/data/run1"), 5, "a bare prefix also matches run10")
		assert.Len(t, store.ByPrefix("/data/"), 5)
		assert.Empty(t, store.ByPrefix("/other"))
	})

	t.Run("Delete", func(t *testing.T) {
		n, err := store.Delete("/data/run1/a.sur")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Empty(t, store.ByPrefix("/data/run1/a.sur"))

		n, err = store.Delete("/data/run1/a.sur")
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	require.NoError(t, store.Close())

	t.Run("ReopenRebuildsIndex", func(t *testing.T) {
		again, err := Open(dsn, zerolog.Nop())
		require.NoError(t, err)
		defer again.Close()
		assert.Len(t, again.ByPrefix("/data/"), 3)
	})
}
