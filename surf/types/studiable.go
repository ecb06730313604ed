package types

// StudiableType is the kind of measured object stored in a file.
type StudiableType int32

const (
	StudiableUnknown                StudiableType = -1
	StudiableProfile                StudiableType = 1
	StudiableSurface                StudiableType = 2
	StudiableBinaryImage            StudiableType = 3
	StudiableProfileSeries          StudiableType = 4
	StudiableSurfaceSeries          StudiableType = 5
	StudiableMeridianDisc           StudiableType = 6
	StudiableMultiLayerProfile      StudiableType = 7
	StudiableMultiLayerSurface      StudiableType = 8
	StudiableParallelDisc           StudiableType = 9 // not implemented by the library
	StudiableIntensityImage         StudiableType = 10
	StudiableIntensitySurface       StudiableType = 11
	StudiableRGBImage               StudiableType = 12
	StudiableRGBSurface             StudiableType = 13
	StudiableForceCurve             StudiableType = 14
	StudiableSeriesOfForceCurve     StudiableType = 15
	StudiableRGBIntensitySurface    StudiableType = 16
	StudiableParametricProfile      StudiableType = 17
	StudiableRGBImagesSeries        StudiableType = 18
	StudiableParametricSurface      StudiableType = 19 // not implemented by the library
	StudiableSpectrum               StudiableType = 20
	StudiableHyperSpectral          StudiableType = 21
	StudiableRoundnessProfile       StudiableType = 22 // not implemented by the library
	StudiableMultiRoundnessProfile  StudiableType = 23 // not implemented by the library
	StudiableFlatnessProfile        StudiableType = 24 // not implemented by the library
	StudiableMultiFlatnessProfile   StudiableType = 25 // not implemented by the library
	StudiableForceVolume            StudiableType = 26
	StudiableForceVolumeSpringConst StudiableType = 27
	StudiableForceVolumeSensConst   StudiableType = 28
	StudiableCITSSpectrum           StudiableType = 29
	StudiableCITSCube               StudiableType = 30
	StudiableMultiHStraightness     StudiableType = 31 // not implemented by the library
	StudiableMultiVStraightness     StudiableType = 32 // not implemented by the library
	StudiableHelicoidalRoundness    StudiableType = 33 // not implemented by the library
	StudiableSpiralFlatness         StudiableType = 34 // not implemented by the library
)

// Range markers of the vendor table. They alias Profile and SpiralFlatness
// and are not variants of their own.
const (
	FirstStudiable = StudiableProfile
	LastStudiable  = StudiableSpiralFlatness
)

var studiableTypes = newEnumTable(
	enumEntry[StudiableType]{StudiableUnknown, "unknown"},
	enumEntry[StudiableType]{StudiableProfile, "profile"},
	enumEntry[StudiableType]{StudiableSurface, "surface"},
	enumEntry[StudiableType]{StudiableBinaryImage, "binary image"},
	enumEntry[StudiableType]{StudiableProfileSeries, "profile series"},
	enumEntry[StudiableType]{StudiableSurfaceSeries, "surface series"},
	enumEntry[StudiableType]{StudiableMeridianDisc, "meridian disc"},
	enumEntry[StudiableType]{StudiableMultiLayerProfile, "multi-layer profile"},
	enumEntry[StudiableType]{StudiableMultiLayerSurface, "multi-layer surface"},
	enumEntry[StudiableType]{StudiableParallelDisc, "parallel disc"},
	enumEntry[StudiableType]{StudiableIntensityImage, "intensity image"},
	enumEntry[StudiableType]{StudiableIntensitySurface, "intensity surface"},
	enumEntry[StudiableType]{StudiableRGBImage, "RGB image"},
	enumEntry[StudiableType]{StudiableRGBSurface, "RGB surface"},
	enumEntry[StudiableType]{StudiableForceCurve, "force curve"},
	enumEntry[StudiableType]{StudiableSeriesOfForceCurve, "series of force curves"},
	enumEntry[StudiableType]{StudiableRGBIntensitySurface, "RGB intensity surface"},
	enumEntry[StudiableType]{StudiableParametricProfile, "parametric profile"},
	enumEntry[StudiableType]{StudiableRGBImagesSeries, "RGB images series"},
	enumEntry[StudiableType]{StudiableParametricSurface, "parametric surface"},
	enumEntry[StudiableType]{StudiableSpectrum, "spectrum"},
	enumEntry[StudiableType]{StudiableHyperSpectral, "hyperspectral"},
	enumEntry[StudiableType]{StudiableRoundnessProfile, "roundness profile"},
	enumEntry[StudiableType]{StudiableMultiRoundnessProfile, "multi roundness profile"},
	enumEntry[StudiableType]{StudiableFlatnessProfile, "flatness profile"},
	enumEntry[StudiableType]{StudiableMultiFlatnessProfile, "multi flatness profile"},
	enumEntry[StudiableType]{StudiableForceVolume, "force volume"},
	enumEntry[StudiableType]{StudiableForceVolumeSpringConst, "force volume spring constant"},
	enumEntry[StudiableType]{StudiableForceVolumeSensConst, "force volume sensitivity constant"},
	enumEntry[StudiableType]{StudiableCITSSpectrum, "CITS spectrum"},
	enumEntry[StudiableType]{StudiableCITSCube, "CITS cube"},
	enumEntry[StudiableType]{StudiableMultiHStraightness, "multi horizontal straightness profile"},
	enumEntry[StudiableType]{StudiableMultiVStraightness, "multi vertical straightness profile"},
	enumEntry[StudiableType]{StudiableHelicoidalRoundness, "helicoidal roundness profile"},
	enumEntry[StudiableType]{StudiableSpiralFlatness, "spiral flatness profile"},
)

// LookupStudiableType classifies a raw studiable kind.
func LookupStudiableType(v int) (StudiableType, bool) { return studiableTypes.lookup(v) }

func (s StudiableType) Value() int     { return int(s) }
func (s StudiableType) Known() bool    { return studiableTypes.known(s) }
func (s StudiableType) String() string { return studiableTypes.name(s) }
