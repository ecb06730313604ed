package types

// InfoSizeTag is the value of the leading size field of the vendor header.
// It identifies the header revision; it is not the encoded byte length.
const InfoSizeTag = 339

// Fixed text capacities, in bytes.
const (
	NameLen       = 31
	AxisTextLen   = 17
	ClientInfoLen = 128
	TAxisTextLen  = 14
)

// ObjectInfo is the vendor object header (TSurfObjectInfos) as raw fields.
// Text fields are NUL padded byte arrays; decoding them is done by Metadata.
// The wire order is InfoLayout, not the declaration order of this struct.
type ObjectInfo struct {
	Size             uint32
	Type             int32
	Name             [NameLen]byte
	Operator         [NameLen]byte
	SensorType       int16
	TrackingType     int16
	SpecialPointType int16
	Absolute         int32 // C BOOL
	GaugeResolution  float32
	ZMin             int32
	ZMax             int32
	XCount           int32
	YCount           int32
	WCount           int32
	XStep            float32
	YStep            float32
	ZStep            float32
	XOffset          float32
	YOffset          float32
	ZOffset          float32
	XAxisName        [AxisTextLen]byte
	YAxisName        [AxisTextLen]byte
	ZAxisName        [AxisTextLen]byte
	XAxisUnit        int32
	YAxisUnit        int32
	ZAxisUnit        int32
	XUnknownUnit     [AxisTextLen]byte
	YUnknownUnit     [AxisTextLen]byte
	ZUnknownUnit     [AxisTextLen]byte
	Inverted         int32 // C BOOL
	Rectified        int16
	Second           int16
	Minute           int16
	Hour             int16
	Day              int16
	Month            int16
	Year             int16
	MeasureLength    float32
	ClientInfo       [ClientInfoLen]byte
	CommentSize      int16
	TStep            float32
	TOffset          float32
	TAxisUnit        int32
	TUnknownUnit     [TAxisTextLen]byte
	TAxisName        [TAxisTextLen]byte
}

// NewObjectInfo returns an empty header with the size tag set, ready to be
// handed to the library.
func NewObjectInfo() ObjectInfo {
	return ObjectInfo{Size: InfoSizeTag}
}

// PointCount is the number of points in the base two-dimensional grid.
// Non-positive dimensions give zero.
func (o *ObjectInfo) PointCount() int {
	if o.XCount <= 0 || o.YCount <= 0 {
		return 0
	}
	return int(o.XCount) * int(o.YCount)
}

// CommentLen is the declared comment length; negative values give zero.
func (o *ObjectInfo) CommentLen() int {
	if o.CommentSize <= 0 {
		return 0
	}
	return int(o.CommentSize)
}

func (o *ObjectInfo) Kind() StudiableType      { return StudiableType(o.Type) }
func (o *ObjectInfo) Sensor() SensorType       { return SensorType(o.SensorType) }
func (o *ObjectInfo) Tracking() TrackingType   { return TrackingType(o.TrackingType) }
func (o *ObjectInfo) Special() SpecialPoints   { return SpecialPoints(o.SpecialPointType) }
func (o *ObjectInfo) IsAbsolute() bool         { return o.Absolute != 0 }
func (o *ObjectInfo) IsInverted() bool         { return o.Inverted != 0 }
func (o *ObjectInfo) RectifiedFlag() Rectified { return Rectified(o.Rectified) }

// SetText copies s into a fixed text field, truncating to its capacity and
// zeroing the remainder.
func SetText(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}
