// Package native is the boundary to the vendor surface library.
//
// Library is the set of entry points the loader drives. The real binding
// (build tag surfapi) resolves them from the shared object at run time;
// MockLibrary serves in-memory files for tests and tooling.
package native

import (
	"errors"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

var (
	// ErrNotAvailable is returned by Load when the binding was not compiled in.
	ErrNotAvailable = errors.New("surfapi binding not available: build with -tags surfapi")
	// ErrLibraryNotFound is returned when no shared object can be located.
	ErrLibraryNotFound = errors.New("surfapi library not found")
)

// Handle is the opaque file handle returned by Open.
type Handle uintptr

// Op names a library entry point.
type Op string

const (
	OpOpen        Op = "open"
	OpClose       Op = "close"
	OpAbort       Op = "abort"
	OpReadInfo    Op = "readObjectInfo"
	OpReadComment Op = "readObjectComment"
	OpReadPoints  Op = "readObjectPoints"
)

// OpenResult is what a successful Open yields.
type OpenResult struct {
	Handle  Handle
	Objects int
	Format  types.FormatType
}

// Library is the vendor API. Object indices are 1-based. Every call
// blocks until the library returns and reports exactly one ResultCode.
//
// After a successful Open the caller must release the handle with exactly
// one of Close or Abort.
type Library interface {
	Open(path string, mode types.OpenMode) (OpenResult, types.ResultCode)
	Close(h Handle) types.ResultCode
	Abort(h Handle) types.ResultCode

	// ReadObjectInfo fills info in place. info.Size must carry
	// types.InfoSizeTag.
	ReadObjectInfo(h Handle, object int, info *types.ObjectInfo) types.ResultCode
	// ReadObjectComment fills buf, sized to the declared comment length.
	ReadObjectComment(h Handle, object int, buf []byte) types.ResultCode
	// ReadObjectPoints fills buf, sized to cols*rows.
	ReadObjectPoints(h Handle, object int, buf []int32) types.ResultCode
}
