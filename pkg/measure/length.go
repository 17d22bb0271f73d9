package measure

import "math"

type LengthUnit string

const (
	Millimetre LengthUnit = "mm"
	Centimetre LengthUnit = "cm"
	Metre      LengthUnit = "m"
)

// millimetres per unit
var lengthFactors = map[LengthUnit]float64{
	Millimetre: 1,
	Centimetre: 10,
	Metre:      1000,
}

// Length is an immutable length value with a unit.
type Length struct {
	value float64
	unit  LengthUnit
}

func NewLength(value float64, unit LengthUnit) Length {
	return Length{value: value, unit: unit}
}

func (l Length) Value() float64 {
	return l.value
}

func (l Length) Unit() LengthUnit {
	return l.unit
}

func (l Length) Convert(to LengthUnit) Length {
	if l.unit == to {
		return l
	}
	mm := l.value * lengthFactors[l.unit]
	return Length{value: mm / lengthFactors[to], unit: to}
}

// CeilValue converts to the given unit and rounds up to a whole number.
func (l Length) CeilValue(to LengthUnit) int {
	return int(math.Ceil(l.Convert(to).value))
}

func (l Length) IsZero() bool {
	return l.value == 0
}

func (l Length) Add(other Length) Length {
	return Length{
		value: l.value + other.Convert(l.unit).value,
		unit:  l.unit,
	}
}

func (l Length) GreaterThan(other Length) bool {
	return l.value > other.Convert(l.unit).value
}
