package types

import (
	"bytes"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalidText is returned when a fixed-width text field or a comment is
// not valid UTF-8.
var ErrInvalidText = errors.New("invalid UTF-8 text")

// Axis is the decoded description of one axis.
type Axis struct {
	Name        string
	Unit        UnitType
	UnknownUnit string // free-text unit, used when Unit is UnitUnknown
	Step        float32
	Offset      float32
}

// UnitLabel is the printable unit of the axis.
func (a Axis) UnitLabel() string {
	if a.Unit == UnitUnknown && a.UnknownUnit != "" {
		return a.UnknownUnit
	}
	return a.Unit.String()
}

// Timestamp holds the raw acquisition date fields. No calendar validation
// is applied.
type Timestamp struct {
	Year, Month, Day     int16
	Hour, Minute, Second int16
}

// Time converts the fields to a UTC time. ok is false if the fields do not
// name a real date and time.
func (t Timestamp) Time() (time.Time, bool) {
	tm := time.Date(int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second), 0, time.UTC)
	// time.Date normalises out-of-range fields, so a valid stamp round-trips
	ok := tm.Year() == int(t.Year) && int(tm.Month()) == int(t.Month) && tm.Day() == int(t.Day) &&
		tm.Hour() == int(t.Hour) && tm.Minute() == int(t.Minute) && tm.Second() == int(t.Second)
	return tm, ok
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Metadata is the decoded view of an ObjectInfo: text trimmed and
// validated, integer codes mapped to their enumerations.
type Metadata struct {
	Kind            StudiableType
	Name            string
	Operator        string
	Sensor          SensorType
	Tracking        TrackingType
	Special         SpecialPoints
	Absolute        bool
	GaugeResolution float32 // zero when unset
	ZMin            int32
	ZMax            int32
	Cols            int32
	Rows            int32
	Depth           int32
	X, Y, Z, T      Axis
	Inverted        bool
	Rectified       Rectified
	Acquired        Timestamp
	MeasureLength   float32
	ClientInfo      string
	CommentSize     int
}

// AcquiredAt returns the raw acquisition stamp.
func (m *Metadata) AcquiredAt() Timestamp { return m.Acquired }

// Time is shorthand for m.Acquired.Time().
func (m *Metadata) Time() (time.Time, bool) { return m.Acquired.Time() }

// PointCount is Cols*Rows, or zero when either is non-positive.
func (m *Metadata) PointCount() int {
	if m.Cols <= 0 || m.Rows <= 0 {
		return 0
	}
	return int(m.Cols) * int(m.Rows)
}

// DecodeText trims trailing NUL bytes from a fixed-width field and checks
// that what remains is UTF-8.
func DecodeText(b []byte) (string, error) {
	b = bytes.TrimRight(b, "\x00")
	if !utf8.Valid(b) {
		return "", ErrInvalidText
	}
	return string(b), nil
}

// DecodeComment checks that a comment is UTF-8. Its length is declared by
// commentSize, so every byte is kept, trailing NULs included.
func DecodeComment(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidText
	}
	return string(b), nil
}

// Metadata decodes the header. The first field that is not valid UTF-8
// fails the whole decode.
func (o *ObjectInfo) Metadata() (Metadata, error) {
	m := Metadata{
		Kind:            o.Kind(),
		Sensor:          o.Sensor(),
		Tracking:        o.Tracking(),
		Special:         o.Special(),
		Absolute:        o.IsAbsolute(),
		GaugeResolution: o.GaugeResolution,
		ZMin:            o.ZMin,
		ZMax:            o.ZMax,
		Cols:            o.XCount,
		Rows:            o.YCount,
		Depth:           o.WCount,
		Inverted:        o.IsInverted(),
		Rectified:       o.RectifiedFlag(),
		Acquired: Timestamp{
			Year: o.Year, Month: o.Month, Day: o.Day,
			Hour: o.Hour, Minute: o.Minute, Second: o.Second,
		},
		MeasureLength: o.MeasureLength,
		CommentSize:   o.CommentLen(),
	}
	m.X = Axis{Unit: UnitType(o.XAxisUnit), Step: o.XStep, Offset: o.XOffset}
	m.Y = Axis{Unit: UnitType(o.YAxisUnit), Step: o.YStep, Offset: o.YOffset}
	m.Z = Axis{Unit: UnitType(o.ZAxisUnit), Step: o.ZStep, Offset: o.ZOffset}
	m.T = Axis{Unit: UnitType(o.TAxisUnit), Step: o.TStep, Offset: o.TOffset}

	texts := []struct {
		field string
		src   []byte
		dst   *string
	}{
		{"name", o.Name[:], &m.Name},
		{"operator", o.Operator[:], &m.Operator},
		{"xAxisName", o.XAxisName[:], &m.X.Name},
		{"yAxisName", o.YAxisName[:], &m.Y.Name},
		{"zAxisName", o.ZAxisName[:], &m.Z.Name},
		{"tAxisName", o.TAxisName[:], &m.T.Name},
		{"strXAxisUnknownUnit", o.XUnknownUnit[:], &m.X.UnknownUnit},
		{"strYAxisUnknownUnit", o.YUnknownUnit[:], &m.Y.UnknownUnit},
		{"strZAxisUnknownUnit", o.ZUnknownUnit[:], &m.Z.UnknownUnit},
		{"strTAxisUnknownUnit", o.TUnknownUnit[:], &m.T.UnknownUnit},
		{"clientInfo", o.ClientInfo[:], &m.ClientInfo},
	}
	for _, t := range texts {
		s, err := DecodeText(t.src)
		if err != nil {
			return Metadata{}, fmt.Errorf("field %s: %w", t.field, err)
		}
		*t.dst = s
	}
	return m, nil
}
