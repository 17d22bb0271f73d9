package entities

import "fmt"

// RoundingMode selects how adjusted postage prices are rounded to whole
// cents.
type RoundingMode string

const (
	RoundHalfUp   RoundingMode = "half-up"
	RoundHalfDown RoundingMode = "half-down"
	RoundHalfEven RoundingMode = "half-even"
	RoundHalfOdd  RoundingMode = "half-odd"
)

func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(s) {
	case RoundHalfUp, RoundHalfDown, RoundHalfEven, RoundHalfOdd:
		return RoundingMode(s), nil
	}
	return "", fmt.Errorf("unknown rounding mode %q", s)
}
