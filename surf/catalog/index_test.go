package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIndex(t *testing.T) {
	idx := NewPathIndex()
	idx.Add(Entry{Path: "/a/x.sur", Object: 1})
	idx.Add(Entry{Path: "/a/x.sur", Object: 2})
	idx.Add(Entry{Path: "/a/y.sur", Object: 1})
	idx.Add(Entry{Path: "/ab/z.sur", Object: 1})

	assert.Equal(t, 3, idx.Len())
	assert.Len(t, idx.Get("/a/x.sur"), 2)
	assert.Len(t, idx.Get("/a//x.sur"), 2, "paths are cleaned")
	assert.Nil(t, idx.Get("/a/missing.sur"))

	assert.Len(t, idx.Prefix("/a/"), 3)
	assert.Len(t, idx.Prefix("/a"), 4)
	assert.Len(t, idx.Prefix(""), 4)

	got := idx.Get("/a/x.sur")
	got[0].Object = 42
	assert.Equal(t, 1, idx.Get("/a/x.sur")[0].Object)

	idx.Put("/a/x.sur", []Entry{{Path: "/a/x.sur", Object: 7}})
	assert.Len(t, idx.Get("/a/x.sur"), 1)
	idx.Put("/a/x.sur", nil)
	assert.Nil(t, idx.Get("/a/x.sur"))

	assert.True(t, idx.Remove("/a/y.sur"))
	assert.False(t, idx.Remove("/a/y.sur"))
	assert.Equal(t, 1, idx.Len())
}

func TestPathIndex_Concurrent(t *testing.T) {
	idx := NewPathIndex()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				idx.Put(fmt.Sprintf("/w%d/%d.sur", i, j), []Entry{{Object: j}})
				_ = idx.Prefix(fmt.Sprintf("/w%d/", i))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, idx.Len())
	assert.Len(t, idx.Prefix("/w3/"), 50)
}
