package types

// UnitType is the unit of one axis. UnitUnknown and UnitNone share the
// value 0; lookup yields UnitUnknown, and the axis' unknown-unit text field
// then carries the unit as free text.
type UnitType int32

const (
	UnitUnknown UnitType = 0
	UnitNone    UnitType = 0 // alias of UnitUnknown
	UnitInch    UnitType = 1
	UnitMM      UnitType = 2
	UnitMA      UnitType = 3
	UnitVolt    UnitType = 4
	UnitNewton  UnitType = 5
	UnitDegree  UnitType = 6
	UnitRadian  UnitType = 7
	UnitKelvin  UnitType = 8
	UnitCelsius UnitType = 9
	UnitFahr    UnitType = 10
	UnitPercent UnitType = 11
	UnitSecond  UnitType = 12
	UnitHertz   UnitType = 13
	UnitDigit   UnitType = 14
	UnitPascal  UnitType = 15
	UnitKbT     UnitType = 16
	UnitEV      UnitType = 17
)

var unitTypes = newEnumTable(
	enumEntry[UnitType]{UnitUnknown, "unknown"},
	enumEntry[UnitType]{UnitNone, "none"},
	enumEntry[UnitType]{UnitInch, "inch"},
	enumEntry[UnitType]{UnitMM, "mm"},
	enumEntry[UnitType]{UnitMA, "mA"},
	enumEntry[UnitType]{UnitVolt, "V"},
	enumEntry[UnitType]{UnitNewton, "N"},
	enumEntry[UnitType]{UnitDegree, "deg"},
	enumEntry[UnitType]{UnitRadian, "rad"},
	enumEntry[UnitType]{UnitKelvin, "K"},
	enumEntry[UnitType]{UnitCelsius, "°C"},
	enumEntry[UnitType]{UnitFahr, "°F"},
	enumEntry[UnitType]{UnitPercent, "%"},
	enumEntry[UnitType]{UnitSecond, "s"},
	enumEntry[UnitType]{UnitHertz, "Hz"},
	enumEntry[UnitType]{UnitDigit, "digit"},
	enumEntry[UnitType]{UnitPascal, "Pa"},
	enumEntry[UnitType]{UnitKbT, "kbT"},
	enumEntry[UnitType]{UnitEV, "eV"},
)

// LookupUnitType classifies a raw unit value.
func LookupUnitType(v int) (UnitType, bool) { return unitTypes.lookup(v) }

func (u UnitType) Value() int     { return int(u) }
func (u UnitType) Known() bool    { return unitTypes.known(u) }
func (u UnitType) String() string { return unitTypes.name(u) }
