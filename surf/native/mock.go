package native

import (
	"sync"

	"github.com/ZanzyTHEbar/surfapi-go/surf/types"
)

// MockObject is one object of a virtual file.
type MockObject struct {
	Info    types.ObjectInfo
	Comment []byte
	Points  []int32
}

// MockFile is a virtual metrology file served by MockLibrary.
type MockFile struct {
	Format  types.FormatType
	Objects []MockObject
}

// Call is one recorded library call. Object is zero for open, close and
// abort.
type Call struct {
	Op     Op
	Handle Handle
	Object int
	Path   string
}

// Fault makes the first call matching Op (and Object, when non-zero)
// return Code instead of running.
type Fault struct {
	Op     Op
	Object int
	Code   types.ResultCode
}

// MockLibrary is an in-memory Library. It is safe for concurrent use;
// each handle is independent.
type MockLibrary struct {
	mu     sync.Mutex
	files  map[string]MockFile
	live   map[Handle]string
	next   Handle
	calls  []Call
	faults []Fault

	// BeforeCall, when set, runs before every call with the mutex released.
	BeforeCall func(Call)
}

var _ Library = (*MockLibrary)(nil)

func NewMockLibrary() *MockLibrary {
	return &MockLibrary{
		files: make(map[string]MockFile),
		live:  make(map[Handle]string),
		next:  0x1000,
	}
}

// AddFile registers a virtual file under path.
func (m *MockLibrary) AddFile(path string, f MockFile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = f
}

// Inject queues a fault. Each fault fires once.
func (m *MockLibrary) Inject(f Fault) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faults = append(m.faults, f)
}

// Calls returns the calls made so far, in order.
func (m *MockLibrary) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Count returns how many calls of op were made.
func (m *MockLibrary) Count(op Op) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Live returns the number of handles not yet closed or aborted.
func (m *MockLibrary) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Reset forgets recorded calls and pending faults. Files stay registered.
func (m *MockLibrary) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.faults = nil
}

// record logs c and reports a pending fault for it. Callers hold m.mu.
func (m *MockLibrary) record(c Call) (types.ResultCode, bool) {
	m.calls = append(m.calls, c)
	for i, f := range m.faults {
		if f.Op == c.Op && (f.Object == 0 || f.Object == c.Object) {
			m.faults = append(m.faults[:i], m.faults[i+1:]...)
			return f.Code, true
		}
	}
	return 0, false
}

func (m *MockLibrary) before(c Call) {
	if m.BeforeCall != nil {
		m.BeforeCall(c)
	}
}

// object returns the addressed object of a live handle. Callers hold m.mu.
func (m *MockLibrary) object(h Handle, object int) (MockObject, types.ResultCode) {
	path, ok := m.live[h]
	if !ok {
		return MockObject{}, types.ResultInvalidFileHandle
	}
	f := m.files[path]
	if object < 1 || object > len(f.Objects) {
		return MockObject{}, types.ResultWrongObjectIndex
	}
	return f.Objects[object-1], types.ResultOK
}

func (m *MockLibrary) Open(path string, mode types.OpenMode) (OpenResult, types.ResultCode) {
	c := Call{Op: OpOpen, Path: path}
	m.before(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if rc, ok := m.record(c); ok {
		return OpenResult{}, rc
	}
	if mode != types.OpenRead {
		return OpenResult{}, types.ResultUnknownFileFlags
	}
	f, ok := m.files[path]
	if !ok {
		return OpenResult{}, types.ResultInvalidFilename
	}
	m.next++
	h := m.next
	m.live[h] = path
	m.calls[len(m.calls)-1].Handle = h
	return OpenResult{Handle: h, Objects: len(f.Objects), Format: f.Format}, types.ResultOK
}

func (m *MockLibrary) release(op Op, h Handle) types.ResultCode {
	c := Call{Op: op, Handle: h}
	m.before(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[h]; !ok {
		m.calls = append(m.calls, c)
		return types.ResultInvalidFileHandle
	}
	// the handle is gone whatever the fault says
	rc, faulted := m.record(c)
	delete(m.live, h)
	if faulted {
		return rc
	}
	return types.ResultOK
}

func (m *MockLibrary) Close(h Handle) types.ResultCode { return m.release(OpClose, h) }
func (m *MockLibrary) Abort(h Handle) types.ResultCode { return m.release(OpAbort, h) }

// ReadObjectInfo round-trips the stored header through its wire layout.
func (m *MockLibrary) ReadObjectInfo(h Handle, object int, info *types.ObjectInfo) types.ResultCode {
	c := Call{Op: OpReadInfo, Handle: h, Object: object}
	m.before(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if rc, ok := m.record(c); ok {
		return rc
	}
	if info == nil {
		return types.ResultNullPointer
	}
	if info.Size != types.InfoSizeTag {
		return types.ResultBadSize
	}
	obj, rc := m.object(h, object)
	if !rc.IsSuccess() {
		return rc
	}
	src := obj.Info
	src.Size = types.InfoSizeTag
	decoded, err := types.DecodeObjectInfo(types.MarshalObjectInfo(&src))
	if err != nil {
		return types.ResultInvalidInfos
	}
	*info = decoded
	return types.ResultOK
}

func (m *MockLibrary) ReadObjectComment(h Handle, object int, buf []byte) types.ResultCode {
	c := Call{Op: OpReadComment, Handle: h, Object: object}
	m.before(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if rc, ok := m.record(c); ok {
		return rc
	}
	obj, rc := m.object(h, object)
	if !rc.IsSuccess() {
		return rc
	}
	if len(buf) == 0 {
		return types.ResultEmptyComment
	}
	if len(buf) < obj.Info.CommentLen() {
		return types.ResultInvalidComment
	}
	copy(buf, obj.Comment)
	return types.ResultOK
}

func (m *MockLibrary) ReadObjectPoints(h Handle, object int, buf []int32) types.ResultCode {
	c := Call{Op: OpReadPoints, Handle: h, Object: object}
	m.before(c)
	m.mu.Lock()
	defer m.mu.Unlock()
	if rc, ok := m.record(c); ok {
		return rc
	}
	obj, rc := m.object(h, object)
	if !rc.IsSuccess() {
		return rc
	}
	if len(buf) != obj.Info.PointCount() {
		return types.ResultInvalidPointSize
	}
	copy(buf, obj.Points)
	return types.ResultOK
}
