package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShortRecord is returned when a buffer is smaller than the layout.
	ErrShortRecord = errors.New("object info record too short")
	// ErrFieldRange is returned when a C long read from an LP64 record does
	// not fit the 32-bit field that stores it.
	ErrFieldRange = errors.New("object info field out of range")
)

// FieldKind is the wire encoding of one header field.
type FieldKind uint8

const (
	KindUint32 FieldKind = iota
	KindInt32
	KindULong // C unsigned long, width set by the layout
	KindLong  // C long, width set by the layout
	KindInt16
	KindBool32 // C BOOL, four bytes
	KindFloat32
	KindText // fixed width, NUL padded
)

func (k FieldKind) String() string {
	switch k {
	case KindUint32:
		return "uint32"
	case KindInt32:
		return "int32"
	case KindULong:
		return "ulong"
	case KindLong:
		return "long"
	case KindInt16:
		return "int16"
	case KindBool32:
		return "bool32"
	case KindFloat32:
		return "float32"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Field is one entry of the header layout.
type Field struct {
	Name   string
	Kind   FieldKind
	Width  int
	Offset int

	// slot returns the struct storage backing the field: *uint32, *int32,
	// *int16, *float32, or a slice over the fixed text array.
	slot func(o *ObjectInfo) any
}

func scalar(name string, kind FieldKind, slot func(o *ObjectInfo) any) Field {
	width := 4
	if kind == KindInt16 {
		width = 2
	}
	return Field{Name: name, Kind: kind, Width: width, slot: slot}
}

func text(name string, width int, slot func(o *ObjectInfo) any) Field {
	return Field{Name: name, Kind: KindText, Width: width, slot: slot}
}

// Layout is the byte-exact, packed, little-endian order in which the
// vendor library writes TSurfObjectInfos for one C ABI. Only the C long
// fields change width between ABIs; reordering or resizing any entry
// shifts every following field.
type Layout struct {
	Fields    []Field
	Size      int
	LongWidth int
}

// NewLayout builds the header layout for a C long of longWidth bytes:
// 4 on Windows (LLP64) and 32-bit targets, 8 on LP64 Unix.
func NewLayout(longWidth int) (*Layout, error) {
	if longWidth != 4 && longWidth != 8 {
		return nil, fmt.Errorf("unsupported C long width %d", longWidth)
	}
	fields := headerFields(longWidth)
	off := 0
	for i := range fields {
		fields[i].Offset = off
		off += fields[i].Width
	}
	return &Layout{Fields: fields, Size: off, LongWidth: longWidth}, nil
}

// MustLayout is NewLayout for widths known at compile time.
func MustLayout(longWidth int) *Layout {
	l, err := NewLayout(longWidth)
	if err != nil {
		panic(err)
	}
	return l
}

// InfoLayout is the layout of the shipped Windows library, which is also
// the canonical wire form used by the mock library.
var InfoLayout = MustLayout(4)

// InfoRecordSize is the encoded length of one header in InfoLayout.
var InfoRecordSize = InfoLayout.Size

func headerFields(longWidth int) []Field {
	long := func(name string, kind FieldKind, slot func(o *ObjectInfo) any) Field {
		return Field{Name: name, Kind: kind, Width: longWidth, slot: slot}
	}
	return []Field{
		long("unsignedSize", KindULong, func(o *ObjectInfo) any { return &o.Size }),
		scalar("type", KindInt32, func(o *ObjectInfo) any { return &o.Type }),
		text("name", NameLen, func(o *ObjectInfo) any { return o.Name[:] }),
		text("operator", NameLen, func(o *ObjectInfo) any { return o.Operator[:] }),
		scalar("sensorType", KindInt16, func(o *ObjectInfo) any { return &o.SensorType }),
		scalar("trackingType", KindInt16, func(o *ObjectInfo) any { return &o.TrackingType }),
		scalar("specialPointType", KindInt16, func(o *ObjectInfo) any { return &o.SpecialPointType }),
		scalar("absolute", KindBool32, func(o *ObjectInfo) any { return &o.Absolute }),
		scalar("gaugeResolution", KindFloat32, func(o *ObjectInfo) any { return &o.GaugeResolution }),
		long("zMin", KindLong, func(o *ObjectInfo) any { return &o.ZMin }),
		long("zMax", KindLong, func(o *ObjectInfo) any { return &o.ZMax }),
		long("xCount", KindLong, func(o *ObjectInfo) any { return &o.XCount }),
		long("yCount", KindLong, func(o *ObjectInfo) any { return &o.YCount }),
		long("wCount", KindLong, func(o *ObjectInfo) any { return &o.WCount }),
		scalar("xStep", KindFloat32, func(o *ObjectInfo) any { return &o.XStep }),
		scalar("yStep", KindFloat32, func(o *ObjectInfo) any { return &o.YStep }),
		scalar("zStep", KindFloat32, func(o *ObjectInfo) any { return &o.ZStep }),
		scalar("xOffset", KindFloat32, func(o *ObjectInfo) any { return &o.XOffset }),
		scalar("yOffset", KindFloat32, func(o *ObjectInfo) any { return &o.YOffset }),
		scalar("zOffset", KindFloat32, func(o *ObjectInfo) any { return &o.ZOffset }),
		text("xAxisName", AxisTextLen, func(o *ObjectInfo) any { return o.XAxisName[:] }),
		text("yAxisName", AxisTextLen, func(o *ObjectInfo) any { return o.YAxisName[:] }),
		text("zAxisName", AxisTextLen, func(o *ObjectInfo) any { return o.ZAxisName[:] }),
		scalar("xAxisUnit", KindInt32, func(o *ObjectInfo) any { return &o.XAxisUnit }),
		scalar("yAxisUnit", KindInt32, func(o *ObjectInfo) any { return &o.YAxisUnit }),
		scalar("zAxisUnit", KindInt32, func(o *ObjectInfo) any { return &o.ZAxisUnit }),
		text("strXAxisUnknownUnit", AxisTextLen, func(o *ObjectInfo) any { return o.XUnknownUnit[:] }),
		text("strYAxisUnknownUnit", AxisTextLen, func(o *ObjectInfo) any { return o.YUnknownUnit[:] }),
		text("strZAxisUnknownUnit", AxisTextLen, func(o *ObjectInfo) any { return o.ZUnknownUnit[:] }),
		scalar("inverted", KindBool32, func(o *ObjectInfo) any { return &o.Inverted }),
		scalar("rectified", KindInt16, func(o *ObjectInfo) any { return &o.Rectified }),
		scalar("second", KindInt16, func(o *ObjectInfo) any { return &o.Second }),
		scalar("minute", KindInt16, func(o *ObjectInfo) any { return &o.Minute }),
		scalar("hour", KindInt16, func(o *ObjectInfo) any { return &o.Hour }),
		scalar("day", KindInt16, func(o *ObjectInfo) any { return &o.Day }),
		scalar("month", KindInt16, func(o *ObjectInfo) any { return &o.Month }),
		scalar("year", KindInt16, func(o *ObjectInfo) any { return &o.Year }),
		scalar("fMeasureLength", KindFloat32, func(o *ObjectInfo) any { return &o.MeasureLength }),
		text("clientInfo", ClientInfoLen, func(o *ObjectInfo) any { return o.ClientInfo[:] }),
		scalar("commentSize", KindInt16, func(o *ObjectInfo) any { return &o.CommentSize }),
		scalar("tStep", KindFloat32, func(o *ObjectInfo) any { return &o.TStep }),
		scalar("tOffset", KindFloat32, func(o *ObjectInfo) any { return &o.TOffset }),
		scalar("tAxisUnit", KindInt32, func(o *ObjectInfo) any { return &o.TAxisUnit }),
		text("strTAxisUnknownUnit", TAxisTextLen, func(o *ObjectInfo) any { return o.TUnknownUnit[:] }),
		text("tAxisName", TAxisTextLen, func(o *ObjectInfo) any { return o.TAxisName[:] }),
	}
}

// Lookup returns the layout entry with the given wire name.
func (l *Layout) Lookup(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// LookupField returns the InfoLayout entry with the given wire name.
func LookupField(name string) (Field, bool) { return InfoLayout.Lookup(name) }

// EncodeObjectInfo writes o in InfoLayout into buf.
func EncodeObjectInfo(buf []byte, o *ObjectInfo) error { return InfoLayout.Encode(buf, o) }

// MarshalObjectInfo returns the InfoLayout bytes of o.
func MarshalObjectInfo(o *ObjectInfo) []byte { return InfoLayout.Marshal(o) }

// DecodeObjectInfo reads a header in InfoLayout.
func DecodeObjectInfo(buf []byte) (ObjectInfo, error) { return InfoLayout.Decode(buf) }

// Encode writes o into buf, which must hold at least l.Size bytes. Long
// fields are sign- or zero-extended to the layout's width.
func (l *Layout) Encode(buf []byte, o *ObjectInfo) error {
	if len(buf) < l.Size {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortRecord, len(buf), l.Size)
	}
	for _, f := range l.Fields {
		dst := buf[f.Offset : f.Offset+f.Width]
		switch v := f.slot(o).(type) {
		case *uint32:
			putUint(dst, uint64(*v))
		case *int32:
			putUint(dst, uint64(int64(*v)))
		case *int16:
			binary.LittleEndian.PutUint16(dst, uint16(*v))
		case *float32:
			binary.LittleEndian.PutUint32(dst, math.Float32bits(*v))
		case []byte:
			copy(dst, v)
		default:
			return fmt.Errorf("field %s: unsupported slot %T", f.Name, v)
		}
	}
	return nil
}

// Marshal returns the bytes of o in l.
func (l *Layout) Marshal(o *ObjectInfo) []byte {
	buf := make([]byte, l.Size)
	// cannot fail: the buffer is sized from the layout
	_ = l.Encode(buf, o)
	return buf
}

// Decode reads a header. A long that does not fit its 32-bit field fails
// with ErrFieldRange.
func (l *Layout) Decode(buf []byte) (ObjectInfo, error) {
	var o ObjectInfo
	if len(buf) < l.Size {
		return o, fmt.Errorf("%w: have %d bytes, need %d", ErrShortRecord, len(buf), l.Size)
	}
	for _, f := range l.Fields {
		src := buf[f.Offset : f.Offset+f.Width]
		switch v := f.slot(&o).(type) {
		case *uint32:
			u := getUint(src)
			if u > math.MaxUint32 {
				return o, fmt.Errorf("field %s: %w: %d", f.Name, ErrFieldRange, u)
			}
			*v = uint32(u)
		case *int32:
			n := getInt(src)
			if n < math.MinInt32 || n > math.MaxInt32 {
				return o, fmt.Errorf("field %s: %w: %d", f.Name, ErrFieldRange, n)
			}
			*v = int32(n)
		case *int16:
			*v = int16(binary.LittleEndian.Uint16(src))
		case *float32:
			*v = math.Float32frombits(binary.LittleEndian.Uint32(src))
		case []byte:
			copy(v, src)
		default:
			return o, fmt.Errorf("field %s: unsupported slot %T", f.Name, v)
		}
	}
	return o, nil
}

func putUint(dst []byte, v uint64) {
	if len(dst) == 8 {
		binary.LittleEndian.PutUint64(dst, v)
		return
	}
	binary.LittleEndian.PutUint32(dst, uint32(v))
}

func getUint(src []byte) uint64 {
	if len(src) == 8 {
		return binary.LittleEndian.Uint64(src)
	}
	return uint64(binary.LittleEndian.Uint32(src))
}

// getInt sign-extends a 4- or 8-byte field.
func getInt(src []byte) int64 {
	if len(src) == 8 {
		return int64(binary.LittleEndian.Uint64(src))
	}
	return int64(int32(binary.LittleEndian.Uint32(src)))
}
