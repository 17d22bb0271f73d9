package measure

type VolumeUnit string

const (
	CubicMillimetre VolumeUnit = "mm3"
	CubicCentimetre VolumeUnit = "cm3"
	CubicMetre      VolumeUnit = "m3"
)

// cubic millimetres per unit
var volumeFactors = map[VolumeUnit]float64{
	CubicMillimetre: 1,
	CubicCentimetre: 1e3,
	CubicMetre:      1e9,
}

// Volume is an immutable volume value with a unit.
type Volume struct {
	value float64
	unit  VolumeUnit
}

func NewVolume(value float64, unit VolumeUnit) Volume {
	return Volume{value: value, unit: unit}
}

func (v Volume) Value() float64 {
	return v.value
}

func (v Volume) Unit() VolumeUnit {
	return v.unit
}

func (v Volume) Convert(to VolumeUnit) Volume {
	if v.unit == to {
		return v
	}
	mm3 := v.value * volumeFactors[v.unit]
	return Volume{value: mm3 / volumeFactors[to], unit: to}
}

func (v Volume) GreaterThan(other Volume) bool {
	return v.value > other.Convert(v.unit).value
}
