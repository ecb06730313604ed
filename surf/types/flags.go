package types

// TrackingType is the sensor tracking mode.
type TrackingType int16

const (
	TrackingNormal   TrackingType = 0
	TrackingExtended TrackingType = 1
)

var trackingTypes = newEnumTable(
	enumEntry[TrackingType]{TrackingNormal, "normal"},
	enumEntry[TrackingType]{TrackingExtended, "extended"},
)

func LookupTrackingType(v int) (TrackingType, bool) { return trackingTypes.lookup(v) }

func (t TrackingType) Value() int     { return int(t) }
func (t TrackingType) Known() bool    { return trackingTypes.known(t) }
func (t TrackingType) String() string { return trackingTypes.name(t) }

// SpecialPoints marks whether the point grid holds non-measured points.
type SpecialPoints int16

const (
	SpecialPointsNormal      SpecialPoints = 0
	SpecialPointsNonMeasured SpecialPoints = 1
)

var specialPoints = newEnumTable(
	enumEntry[SpecialPoints]{SpecialPointsNormal, "normal"},
	enumEntry[SpecialPoints]{SpecialPointsNonMeasured, "non-measured present"},
)

func LookupSpecialPoints(v int) (SpecialPoints, bool) { return specialPoints.lookup(v) }

func (s SpecialPoints) Value() int     { return int(s) }
func (s SpecialPoints) Known() bool    { return specialPoints.known(s) }
func (s SpecialPoints) String() string { return specialPoints.name(s) }

// Rectified tells whether the surface was levelled before storage.
type Rectified int16

const (
	RectifiedNo  Rectified = 0
	RectifiedYes Rectified = 1
)

var rectifiedFlags = newEnumTable(
	enumEntry[Rectified]{RectifiedNo, "no"},
	enumEntry[Rectified]{RectifiedYes, "yes"},
)

func LookupRectified(v int) (Rectified, bool) { return rectifiedFlags.lookup(v) }

func (r Rectified) Value() int     { return int(r) }
func (r Rectified) Known() bool    { return rectifiedFlags.known(r) }
func (r Rectified) String() string { return rectifiedFlags.name(r) }

// OpenMode is the access mode passed to the open call.
type OpenMode int32

const (
	OpenNone  OpenMode = 0 // internal to the library
	OpenRead  OpenMode = 1
	OpenWrite OpenMode = 2
)

var openModes = newEnumTable(
	enumEntry[OpenMode]{OpenNone, "none"},
	enumEntry[OpenMode]{OpenRead, "read"},
	enumEntry[OpenMode]{OpenWrite, "write"},
)

func LookupOpenMode(v int) (OpenMode, bool) { return openModes.lookup(v) }

func (m OpenMode) Value() int     { return int(m) }
func (m OpenMode) Known() bool    { return openModes.known(m) }
func (m OpenMode) String() string { return openModes.name(m) }

// FormatType is the on-disk format family. Detection is internal to the
// library; the value is informational.
type FormatType int32

const (
	FormatUnknown         FormatType = 0
	FormatSurf1           FormatType = 1
	FormatSurf2           FormatType = 2
	FormatSDF             FormatType = 3
	FormatCompressedSurf1 FormatType = 4 // Surf 1 with zlib-compressed points
)

var formatTypes = newEnumTable(
	enumEntry[FormatType]{FormatUnknown, "unknown"},
	enumEntry[FormatType]{FormatSurf1, "Surf 1"},
	enumEntry[FormatType]{FormatSurf2, "Surf 2"},
	enumEntry[FormatType]{FormatSDF, "SDF"},
	enumEntry[FormatType]{FormatCompressedSurf1, "compressed Surf 1"},
)

func LookupFormatType(v int) (FormatType, bool) { return formatTypes.lookup(v) }

func (f FormatType) Value() int     { return int(f) }
func (f FormatType) Known() bool    { return formatTypes.known(f) }
func (f FormatType) String() string { return formatTypes.name(f) }
