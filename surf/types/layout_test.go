package types

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoLayoutSize(t *testing.T) {
	assert.Equal(t, 434, InfoRecordSize)
	assert.Len(t, InfoLayout.Fields, 45)
	assert.Equal(t, 4, InfoLayout.LongWidth)

	// every field starts where the previous one ends
	off := 0
	for _, f := range InfoLayout.Fields {
		assert.Equal(t, off, f.Offset, "field %s", f.Name)
		off += f.Width
	}
}

func TestInfoLayoutOffsets(t *testing.T) {
	tests := []struct {
		field  string
		offset int
		width  int
		kind   FieldKind
	}{
		{"unsignedSize", 0, 4, KindULong},
		{"type", 4, 4, KindInt32},
		{"name", 8, 31, KindText},
		{"operator", 39, 31, KindText},
		{"sensorType", 70, 2, KindInt16},
		{"absolute", 76, 4, KindBool32},
		{"gaugeResolution", 80, 4, KindFloat32},
		{"zMin", 84, 4, KindLong},
		{"xCount", 92, 4, KindLong},
		{"xStep", 104, 4, KindFloat32},
		{"xAxisName", 128, 17, KindText},
		{"xAxisUnit", 179, 4, KindInt32},
		{"strXAxisUnknownUnit", 191, 17, KindText},
		{"inverted", 242, 4, KindBool32},
		{"rectified", 246, 2, KindInt16},
		{"second", 248, 2, KindInt16},
		{"year", 258, 2, KindInt16},
		{"fMeasureLength", 260, 4, KindFloat32},
		{"clientInfo", 264, 128, KindText},
		{"commentSize", 392, 2, KindInt16},
		{"tStep", 394, 4, KindFloat32},
		{"tAxisUnit", 402, 4, KindInt32},
		{"strTAxisUnknownUnit", 406, 14, KindText},
		{"tAxisName", 420, 14, KindText},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := LookupField(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.offset, f.Offset)
			assert.Equal(t, tt.width, f.Width)
			assert.Equal(t, tt.kind, f.Kind)
		})
	}

	_, ok := LookupField("nope")
	assert.False(t, ok)
}

func sampleInfo() ObjectInfo {
	o := NewObjectInfo()
	o.Type = int32(StudiableSurface)
	SetText(o.Name[:], "Magdalenian carved bone  - Pr")
	SetText(o.Operator[:], "lab")
	o.SensorType = int16(SensorOptic)
	o.SpecialPointType = int16(SpecialPointsNonMeasured)
	o.Absolute = 1
	o.ZMin, o.ZMax = -18438, 7395
	o.XCount, o.YCount, o.WCount = 638, 541, 1
	o.XStep, o.YStep, o.ZStep = 0.5, 0.25, 0.001
	SetText(o.XAxisName[:], "X")
	SetText(o.ZUnknownUnit[:], "nm")
	o.XAxisUnit = int32(UnitMM)
	o.Inverted = 1
	o.Rectified = int16(RectifiedYes)
	o.Year, o.Month, o.Day = 2019, 11, 3
	o.Hour, o.Minute, o.Second = 14, 5, 9
	o.MeasureLength = 12.5
	SetText(o.ClientInfo[:], "client")
	o.CommentSize = 4
	o.TStep = 1.5
	o.TAxisUnit = int32(UnitSecond)
	SetText(o.TAxisName[:], "T")
	return o
}

func TestEncodeDecodeObjectInfo(t *testing.T) {
	in := sampleInfo()
	buf := MarshalObjectInfo(&in)
	require.Len(t, buf, InfoRecordSize)

	assert.Equal(t, uint32(InfoSizeTag), binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(buf[4:]))
	assert.Equal(t, "Magdalenian carved bone  - Pr", string(buf[8:8+29]))
	assert.Zero(t, buf[8+29], "text is NUL padded")
	assert.Equal(t, int32(-18438), int32(binary.LittleEndian.Uint32(buf[84:])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[104:])))
	assert.Equal(t, uint16(2019), binary.LittleEndian.Uint16(buf[258:]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(buf[392:]))

	out, err := DecodeObjectInfo(buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeShortRecord(t *testing.T) {
	_, err := DecodeObjectInfo(make([]byte, InfoRecordSize-1))
	assert.ErrorIs(t, err, ErrShortRecord)

	in := sampleInfo()
	err = EncodeObjectInfo(make([]byte, 10), &in)
	assert.ErrorIs(t, err, ErrShortRecord)
}

func TestLP64Layout(t *testing.T) {
	lp64, err := NewLayout(8)
	require.NoError(t, err)
	// six C long fields grow by four bytes each
	assert.Equal(t, InfoRecordSize+6*4, lp64.Size)

	tests := []struct {
		field  string
		offset int
		width  int
	}{
		{"unsignedSize", 0, 8},
		{"type", 8, 4},
		{"name", 12, 31},
		{"gaugeResolution", 84, 4},
		{"zMin", 88, 8},
		{"wCount", 120, 8},
		{"xStep", 128, 4},
		{"commentSize", 416, 2},
		{"tAxisName", 444, 14},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			f, ok := lp64.Lookup(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.offset, f.Offset)
			assert.Equal(t, tt.width, f.Width)
		})
	}

	in := sampleInfo()
	buf := lp64.Marshal(&in)
	require.Len(t, buf, lp64.Size)
	assert.Equal(t, uint64(InfoSizeTag), binary.LittleEndian.Uint64(buf[0:]))
	assert.Equal(t, int64(-18438), int64(binary.LittleEndian.Uint64(buf[88:])), "longs are sign extended")
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[128:])))

	out, err := lp64.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// the 4-byte reading of an LP64 record is not the same header
	narrow, err := DecodeObjectInfo(buf)
	require.NoError(t, err)
	assert.NotEqual(t, in.ZMin, narrow.ZMin)
}

func TestLayoutRejects(t *testing.T) {
	_, err := NewLayout(2)
	assert.Error(t, err)

	lp64 := MustLayout(8)
	in := sampleInfo()
	buf := lp64.Marshal(&in)
	f, _ := lp64.Lookup("xCount")
	binary.LittleEndian.PutUint64(buf[f.Offset:], 1<<40)
	_, err = lp64.Decode(buf)
	assert.ErrorIs(t, err, ErrFieldRange)

	_, err = lp64.Decode(buf[:InfoRecordSize])
	assert.ErrorIs(t, err, ErrShortRecord)
}

func TestSetTextTruncates(t *testing.T) {
	var o ObjectInfo
	SetText(o.TAxisName[:], "a name that is far too long")
	assert.Equal(t, "a name that is", string(o.TAxisName[:]))

	SetText(o.TAxisName[:], "ab")
	assert.Equal(t, byte('b'), o.TAxisName[1])
	for _, b := range o.TAxisName[2:] {
		assert.Zero(t, b)
	}
}
