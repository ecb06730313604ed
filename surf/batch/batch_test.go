package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/surfapi-go/surf/native"
	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

func file(objects int) native.MockFile {
	f := native.MockFile{Format: types.FormatSDF}
	for i := 0; i < objects; i++ {
		info := types.NewObjectInfo()
		info.XCount, info.YCount = 2, 2
		f.Objects = append(f.Objects, native.MockObject{Info: info, Points: []int32{1, 2, 3, 4}})
	}
	return f
}

func TestLoadAll_Order(t *testing.T) {
	lib := native.NewMockLibrary()
	var paths []string
	for i := 0; i < 20; i++ {
		p := fmt.Sprintf("/data/%02d.sdf", i)
		lib.AddFile(p, file(i%3+1))
		paths = append(paths, p)
	}
	paths = append(paths, "/data/missing.sdf")

	b := &Loader{Library: lib, Workers: 4, Logger: zerolog.Nop()}
	results := b.LoadAll(context.Background(), paths)
	require.Len(t, results, len(paths))

	for i, r := range results[:20] {
		assert.Equal(t, paths[i], r.Path)
		require.NoError(t, r.Err)
		assert.Len(t, r.Collections, i%3+1)
		assert.Equal(t, types.FormatSDF, r.Format)
	}
	last := results[20]
	var re *types.ResultError
	require.True(t, errors.As(last.Err, &re))
	assert.Equal(t, types.ResultInvalidFilename, re.Code)

	assert.Equal(t, 0, lib.Live())
	assert.Equal(t, 21, lib.Count(native.OpOpen))

	s := Summarize(results)
	assert.Equal(t, Summary{Files: 21, Failed: 1, Objects: 7*1 + 7*2 + 6*3}, s)
}

func TestLoadAll_BoundedWorkers(t *testing.T) {
	lib := native.NewMockLibrary()
	var inFlight, peak atomic.Int32
	lib.BeforeCall = func(c native.Call) {
		switch c.Op {
		case native.OpOpen:
			n := inFlight.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
		case native.OpClose, native.OpAbort:
			inFlight.Add(-1)
		}
	}
	var paths []string
	for i := 0; i < 30; i++ {
		p := fmt.Sprintf("f%d.sur", i)
		lib.AddFile(p, file(1))
		paths = append(paths, p)
	}

	b := &Loader{Library: lib, Workers: 3}
	results := b.LoadAll(context.Background(), paths)
	for _, r := range results {
		require.NoError(t, r.Err)
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestLoadAll_Cancelled(t *testing.T) {
	lib := native.NewMockLibrary()
	lib.AddFile("a.sur", file(1))
	lib.AddFile("b.sur", file(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &Loader{Library: lib, Workers: 1}
	results := b.LoadAll(ctx, []string{"a.sur", "b.sur"})
	require.Len(t, results, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Collections)
	}
	assert.Equal(t, 0, lib.Count(native.OpOpen))
}

func TestSummarize_Skipped(t *testing.T) {
	s := Summarize([]Result{
		{Collections: []*types.Collection{{}, nil}},
		{Err: errors.New("x")},
	})
	assert.Equal(t, Summary{Files: 2, Failed: 1, Objects: 1, Skipped: 1}, s)
}
