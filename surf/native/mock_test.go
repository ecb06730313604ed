package native

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

func mockFile() MockFile {
	info := types.NewObjectInfo()
	info.Type = int32(types.StudiableSurface)
	types.SetText(info.Name[:], "plate")
	info.XCount, info.YCount = 3, 2
	info.CommentSize = 5
	return MockFile{
		Format: types.FormatSurf2,
		Objects: []MockObject{{
			Info:    info,
			Comment: []byte("hello"),
			Points:  []int32{1, 2, 3, 4, 5, 6},
		}},
	}
}

func TestMockLibrary_ReadSequence(t *testing.T) {
	lib := NewMockLibrary()
	lib.AddFile("/data/plate.sur", mockFile())

	res, rc := lib.Open("/data/plate.sur", types.OpenRead)
	require.Equal(t, types.ResultOK, rc)
	assert.Equal(t, 1, res.Objects)
	assert.Equal(t, types.FormatSurf2, res.Format)
	assert.Equal(t, 1, lib.Live())

	info := types.NewObjectInfo()
	require.Equal(t, types.ResultOK, lib.ReadObjectInfo(res.Handle, 1, &info))
	assert.Equal(t, int32(3), info.XCount)
	assert.Equal(t, "plate", string(info.Name[:5]))

	comment := make([]byte, info.CommentLen())
	require.Equal(t, types.ResultOK, lib.ReadObjectComment(res.Handle, 1, comment))
	assert.Equal(t, "hello", string(comment))

	pts := make([]int32, info.PointCount())
	require.Equal(t, types.ResultOK, lib.ReadObjectPoints(res.Handle, 1, pts))
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, pts)

	require.Equal(t, types.ResultOK, lib.Close(res.Handle))
	assert.Equal(t, 0, lib.Live())

	ops := []Op{}
	for _, c := range lib.Calls() {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []Op{OpOpen, OpReadInfo, OpReadComment, OpReadPoints, OpClose}, ops)
}

func TestMockLibrary_Errors(t *testing.T) {
	lib := NewMockLibrary()
	lib.AddFile("a.sur", mockFile())

	_, rc := lib.Open("missing.sur", types.OpenRead)
	assert.Equal(t, types.ResultInvalidFilename, rc)
	_, rc = lib.Open("a.sur", types.OpenWrite)
	assert.Equal(t, types.ResultUnknownFileFlags, rc)

	res, rc := lib.Open("a.sur", types.OpenRead)
	require.Equal(t, types.ResultOK, rc)

	var zero types.ObjectInfo
	assert.Equal(t, types.ResultBadSize, lib.ReadObjectInfo(res.Handle, 1, &zero))

	info := types.NewObjectInfo()
	assert.Equal(t, types.ResultWrongObjectIndex, lib.ReadObjectInfo(res.Handle, 0, &info), "indices are 1-based")
	assert.Equal(t, types.ResultWrongObjectIndex, lib.ReadObjectInfo(res.Handle, 2, &info))
	assert.Equal(t, types.ResultInvalidPointSize, lib.ReadObjectPoints(res.Handle, 1, make([]int32, 2)))
	assert.Equal(t, types.ResultInvalidFileHandle, lib.ReadObjectInfo(res.Handle+1, 1, &info))

	require.Equal(t, types.ResultOK, lib.Abort(res.Handle))
	assert.Equal(t, types.ResultInvalidFileHandle, lib.Close(res.Handle))
	assert.Equal(t, 0, lib.Live())
}

func TestMockLibrary_Inject(t *testing.T) {
	lib := NewMockLibrary()
	lib.AddFile("a.sur", mockFile())
	lib.Inject(Fault{Op: OpReadPoints, Object: 1, Code: types.ResultIOFileError})
	lib.Inject(Fault{Op: OpClose, Code: types.ResultGenericError})

	res, _ := lib.Open("a.sur", types.OpenRead)
	assert.Equal(t, types.ResultIOFileError, lib.ReadObjectPoints(res.Handle, 1, make([]int32, 6)))
	// faults fire once
	assert.Equal(t, types.ResultOK, lib.ReadObjectPoints(res.Handle, 1, make([]int32, 6)))

	assert.Equal(t, types.ResultGenericError, lib.Close(res.Handle))
	assert.Equal(t, 0, lib.Live(), "a failed close still releases the handle")
	assert.Equal(t, 1, lib.Count(OpClose))

	lib.Reset()
	assert.Empty(t, lib.Calls())
}

func TestMockLibrary_ConcurrentHandles(t *testing.T) {
	lib := NewMockLibrary()
	lib.AddFile("a.sur", mockFile())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, rc := lib.Open("a.sur", types.OpenRead)
			if !assert.Equal(t, types.ResultOK, rc) {
				return
			}
			info := types.NewObjectInfo()
			assert.Equal(t, types.ResultOK, lib.ReadObjectInfo(res.Handle, 1, &info))
			assert.Equal(t, types.ResultOK, lib.Close(res.Handle))
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, lib.Live())
	assert.Equal(t, 16, lib.Count(OpOpen))
}

func TestResolveLibraryPath(t *testing.T) {
	t.Setenv(LibraryEnv, "")

	_, err := ResolveLibraryPath("/nonexistent/libsurfapi.so")
	assert.ErrorIs(t, err, ErrLibraryNotFound)

	dir := t.TempDir()
	_, err = ResolveLibraryPath("", dir)
	assert.ErrorIs(t, err, ErrLibraryNotFound)

	name := libraryNames(runtime.GOOS)[0]
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte{0x7f}, 0o644))

	got, err := ResolveLibraryPath("", t.TempDir(), dir)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	t.Setenv(LibraryEnv, p)
	got, err = ResolveLibraryPath("")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
