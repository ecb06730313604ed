//go:build !surfapi || !(windows || linux || darwin)

package native

import "github.com/ZanzyTHEbar/surfapi-go/surf/types"

// SurfAPI is a stub used when built without the "surfapi" build tag.
type SurfAPI struct{ path string }

var _ Library = (*SurfAPI)(nil)

// Load reports ErrNotAvailable once the library path resolves, so a
// misconfigured path is still reported as such.
func Load(path string) (*SurfAPI, error) {
	if _, err := ResolveLibraryPath(path); err != nil {
		return nil, err
	}
	return nil, ErrNotAvailable
}

func (a *SurfAPI) Path() string   { return a.path }
func (a *SurfAPI) Release() error { return nil }

func (a *SurfAPI) Open(string, types.OpenMode) (OpenResult, types.ResultCode) {
	return OpenResult{}, types.ResultNotImplemented
}

func (a *SurfAPI) Close(Handle) types.ResultCode { return types.ResultNotImplemented }
func (a *SurfAPI) Abort(Handle) types.ResultCode { return types.ResultNotImplemented }

func (a *SurfAPI) ReadObjectInfo(Handle, int, *types.ObjectInfo) types.ResultCode {
	return types.ResultNotImplemented
}

func (a *SurfAPI) ReadObjectComment(Handle, int, []byte) types.ResultCode {
	return types.ResultNotImplemented
}

func (a *SurfAPI) ReadObjectPoints(Handle, int, []int32) types.ResultCode {
	return types.ResultNotImplemented
}
