//go:build surfapi && (windows || linux || darwin)

package native

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// SurfAPI is the vendor shared object bound through purego. Handles and
// object indices are C longs, so their width follows the platform ABI.
type SurfAPI struct {
	path string
	lib  uintptr

	dsOpenStudiable       func(filename *byte, rw int32, pType *int32, pCount *int16, hFile *cLong) int32
	dsCloseStudiable      func(h cLong) int32
	dsAbortOpsOnStudiable func(h cLong) int32
	dsReadObjectInfos     func(h cLong, object cLong, pInfos *byte) int32
	dsReadObjectComment   func(h cLong, object cLong, pComment *byte) int32
	dsReadObjectPoints    func(h cLong, object cLong, pPoints *int32) int32
}

var _ Library = (*SurfAPI)(nil)

// Load opens the shared object at path and resolves the six entry points.
func Load(path string) (*SurfAPI, error) {
	resolved, err := ResolveLibraryPath(path)
	if err != nil {
		return nil, err
	}
	lib, err := openLibrary(resolved)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", resolved, err)
	}
	api := &SurfAPI{path: resolved, lib: lib}
	symbols := []struct {
		name string
		fn   any
	}{
		{"dsOpenStudiable", &api.dsOpenStudiable},
		{"dsCloseStudiable", &api.dsCloseStudiable},
		{"dsAbortOpsOnStudiable", &api.dsAbortOpsOnStudiable},
		{"dsReadObjectInfos", &api.dsReadObjectInfos},
		{"dsReadObjectComment", &api.dsReadObjectComment},
		{"dsReadObjectPoints", &api.dsReadObjectPoints},
	}
	for _, s := range symbols {
		sym, err := lookupSymbol(lib, s.name)
		if err != nil {
			_ = closeLibrary(lib)
			return nil, fmt.Errorf("resolve %s in %s: %w", s.name, resolved, err)
		}
		purego.RegisterFunc(s.fn, sym)
	}
	return api, nil
}

// Path is the resolved location of the shared object.
func (a *SurfAPI) Path() string { return a.path }

// Release unloads the shared object. Handles must not outlive it.
func (a *SurfAPI) Release() error {
	return closeLibrary(a.lib)
}

func (a *SurfAPI) Open(path string, mode types.OpenMode) (OpenResult, types.ResultCode) {
	var (
		format int32
		count  int16
		h      cLong
	)
	name := cString(path)
	rc := types.ResultCode(a.dsOpenStudiable(&name[0], int32(mode), &format, &count, &h))
	runtime.KeepAlive(name)
	if !rc.IsSuccess() {
		return OpenResult{}, rc
	}
	return OpenResult{Handle: Handle(uintptr(h)), Objects: int(count), Format: types.FormatType(format)}, rc
}

func (a *SurfAPI) Close(h Handle) types.ResultCode {
	return types.ResultCode(a.dsCloseStudiable(cLong(h)))
}

func (a *SurfAPI) Abort(h Handle) types.ResultCode {
	return types.ResultCode(a.dsAbortOpsOnStudiable(cLong(h)))
}

// ReadObjectInfo passes the library a copy of info packed in NativeLayout
// and decodes the bytes it writes back.
func (a *SurfAPI) ReadObjectInfo(h Handle, object int, info *types.ObjectInfo) types.ResultCode {
	buf := NativeLayout.Marshal(info)
	rc := types.ResultCode(a.dsReadObjectInfos(cLong(h), cLong(object), &buf[0]))
	if !rc.IsSuccess() {
		return rc
	}
	decoded, err := NativeLayout.Decode(buf)
	if err != nil {
		return types.ResultInvalidInfos
	}
	*info = decoded
	return rc
}

// ReadObjectComment fills buf. An empty buf is refused here, without a
// library call, since there is no &buf[0] to pass; the code is local and
// not a vendor result.
func (a *SurfAPI) ReadObjectComment(h Handle, object int, buf []byte) types.ResultCode {
	if len(buf) == 0 {
		return types.ResultEmptyComment
	}
	return types.ResultCode(a.dsReadObjectComment(cLong(h), cLong(object), &buf[0]))
}

// ReadObjectPoints fills buf. As with comments, an empty buf is a local
// guard and never reaches the library.
func (a *SurfAPI) ReadObjectPoints(h Handle, object int, buf []int32) types.ResultCode {
	if len(buf) == 0 {
		return types.ResultInvalidPoints
	}
	return types.ResultCode(a.dsReadObjectPoints(cLong(h), cLong(object), &buf[0]))
}

// cString returns s as a NUL-terminated byte slice.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}
