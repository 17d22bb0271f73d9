package measure

import "math"

type WeightUnit string

const (
	Gram     WeightUnit = "g"
	Kilogram WeightUnit = "kg"
)

// grams per unit
var weightFactors = map[WeightUnit]float64{
	Gram:     1,
	Kilogram: 1000,
}

// Weight is an immutable weight value with a unit.
type Weight struct {
	value float64
	unit  WeightUnit
}

func NewWeight(value float64, unit WeightUnit) Weight {
	return Weight{value: value, unit: unit}
}

func (w Weight) Value() float64 {
	return w.value
}

func (w Weight) Unit() WeightUnit {
	return w.unit
}

func (w Weight) Convert(to WeightUnit) Weight {
	if w.unit == to {
		return w
	}
	g := w.value * weightFactors[w.unit]
	return Weight{value: g / weightFactors[to], unit: to}
}

// CeilValue converts to the given unit and rounds up to a whole number.
func (w Weight) CeilValue(to WeightUnit) int {
	return int(math.Ceil(w.Convert(to).value))
}

func (w Weight) IsZero() bool {
	return w.value == 0
}

func (w Weight) GreaterThan(other Weight) bool {
	return w.value > other.Convert(w.unit).value
}
