package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumAliasesResolveFirstDeclared(t *testing.T) {
	s, ok := LookupSensorType(1)
	assert.True(t, ok)
	assert.Equal(t, SensorContact, s)
	assert.Equal(t, "contact", s.String())
	assert.Equal(t, "contact", SensorConfocal.String())
	assert.Equal(t, "contact", SensorStructuredLight.String())

	u, ok := LookupUnitType(0)
	assert.True(t, ok)
	assert.Equal(t, "unknown", u.String())
	assert.Equal(t, "unknown", UnitNone.String())
}

func TestSensorType(t *testing.T) {
	tests := []struct {
		value   int
		name    string
		unknown bool
	}{
		{0, "unknown", true},
		{1, "contact", false},
		{2, "optic", false},
		{3, "thermocouple", false},
		{4, "unknown2", true},
		{5, "contact probe", false},
		{6, "AFM", false},
		{7, "STM", false},
		{8, "video", false},
		{9, "interferometer", false},
	}
	for _, tt := range tests {
		s, ok := LookupSensorType(tt.value)
		assert.True(t, ok, "value %d", tt.value)
		assert.Equal(t, tt.name, s.String())
		assert.Equal(t, tt.value, s.Value())
		assert.Equal(t, tt.unknown, s.IsUnknown())
	}

	s, ok := LookupSensorType(10)
	assert.False(t, ok)
	assert.False(t, s.Known())
	assert.Equal(t, "unrecognized", s.String())

	// does not fit in the int16 wire field
	_, ok = LookupSensorType(1<<16 + 1)
	assert.False(t, ok)
}

func TestStudiableType(t *testing.T) {
	tests := []struct {
		value int
		want  StudiableType
		name  string
	}{
		{-1, StudiableUnknown, "unknown"},
		{1, StudiableProfile, "profile"},
		{2, StudiableSurface, "surface"},
		{4, StudiableProfileSeries, "profile series"},
		{34, StudiableSpiralFlatness, "spiral flatness profile"},
	}
	for _, tt := range tests {
		got, ok := LookupStudiableType(tt.value)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.name, got.String())
	}

	for v := int(FirstStudiable); v <= int(LastStudiable); v++ {
		_, ok := LookupStudiableType(v)
		assert.True(t, ok, "value %d", v)
	}
	for _, v := range []int{0, 35, -2} {
		_, ok := LookupStudiableType(v)
		assert.False(t, ok, "value %d", v)
	}
}

func TestSmallEnums(t *testing.T) {
	assert.Equal(t, "extended", TrackingExtended.String())
	assert.Equal(t, "non-measured present", SpecialPointsNonMeasured.String())
	assert.Equal(t, "yes", RectifiedYes.String())
	assert.Equal(t, "read", OpenRead.String())
	assert.Equal(t, "compressed Surf 1", FormatCompressedSurf1.String())
	assert.Equal(t, "°C", UnitCelsius.String())
	assert.Equal(t, 17, UnitEV.Value())

	sp, ok := LookupSpecialPoints(1)
	assert.True(t, ok)
	assert.Equal(t, SpecialPointsNonMeasured, sp)

	_, ok = LookupOpenMode(3)
	assert.False(t, ok)
	_, ok = LookupTrackingType(2)
	assert.False(t, ok)
	_, ok = LookupRectified(-1)
	assert.False(t, ok)
	_, ok = LookupFormatType(5)
	assert.False(t, ok)
	_, ok = LookupUnitType(18)
	assert.False(t, ok)
}
