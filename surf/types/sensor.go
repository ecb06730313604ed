package types

// SensorType is the acquisition sensor recorded in the object header.
//
// The vendor table maps structured light and confocal sensors onto the
// contact value, and has two distinct "unknown" values. Lookup of 1 always
// yields SensorContact; the other two names are kept as aliases so callers
// can still spell them.
type SensorType int16

const (
	SensorUnknown         SensorType = 0
	SensorContact         SensorType = 1
	SensorOptic           SensorType = 2
	SensorThermocouple    SensorType = 3
	SensorUnknown2        SensorType = 4
	SensorContactProbe    SensorType = 5
	SensorAFM             SensorType = 6
	SensorSTM             SensorType = 7
	SensorVideo           SensorType = 8
	SensorInterferometer  SensorType = 9
	SensorStructuredLight SensorType = 1 // alias of SensorContact
	SensorConfocal        SensorType = 1 // alias of SensorContact
)

// Declared in vendor order, aliases last.
var sensorTypes = newEnumTable(
	enumEntry[SensorType]{SensorUnknown, "unknown"},
	enumEntry[SensorType]{SensorUnknown2, "unknown2"},
	enumEntry[SensorType]{SensorContact, "contact"},
	enumEntry[SensorType]{SensorOptic, "optic"},
	enumEntry[SensorType]{SensorThermocouple, "thermocouple"},
	enumEntry[SensorType]{SensorContactProbe, "contact probe"},
	enumEntry[SensorType]{SensorAFM, "AFM"},
	enumEntry[SensorType]{SensorSTM, "STM"},
	enumEntry[SensorType]{SensorVideo, "video"},
	enumEntry[SensorType]{SensorInterferometer, "interferometer"},
	enumEntry[SensorType]{SensorStructuredLight, "structured light"},
	enumEntry[SensorType]{SensorConfocal, "confocal"},
)

// LookupSensorType classifies a raw sensor value.
func LookupSensorType(v int) (SensorType, bool) { return sensorTypes.lookup(v) }

func (s SensorType) Value() int     { return int(s) }
func (s SensorType) Known() bool    { return sensorTypes.known(s) }
func (s SensorType) String() string { return sensorTypes.name(s) }

// IsUnknown is true for both vendor "unknown" values.
func (s SensorType) IsUnknown() bool {
	return s == SensorUnknown || s == SensorUnknown2
}
