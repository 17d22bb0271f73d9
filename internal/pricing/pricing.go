// Package pricing applies the merchant's rate multiplier and rounding
// policy to carrier prices.
package pricing

import (
	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/shopspring/decimal"
)

var (
	two  = decimal.NewFromInt(2)
	half = decimal.New(5, -1)
	one  = decimal.NewFromInt(1)
)

// Round rounds d to the given number of decimal places using the chosen
// half-way tie-breaking mode. Values not exactly on a tie round to the
// nearest neighbour in every mode.
func Round(d decimal.Decimal, places int32, mode entities.RoundingMode) decimal.Decimal {
	switch mode {
	case entities.RoundHalfDown:
		return roundHalfToward(d, places, false)
	case entities.RoundHalfEven:
		return d.RoundBank(places)
	case entities.RoundHalfOdd:
		return roundHalfToward(d, places, true)
	default:
		// half-up: ties round away from zero
		return d.Round(places)
	}
}

// roundHalfToward handles the half-down and half-odd modes, which decimal
// has no primitive for. Shift the target place to the units position,
// split off the fraction and inspect whether it sits exactly on .5.
func roundHalfToward(d decimal.Decimal, places int32, toOdd bool) decimal.Decimal {
	shifted := d.Shift(places)
	floor := shifted.Abs().Floor()
	fraction := shifted.Abs().Sub(floor)

	var units decimal.Decimal
	switch {
	case fraction.Cmp(half) < 0:
		units = floor
	case fraction.Cmp(half) > 0:
		units = floor.Add(one)
	case toOdd && floor.Mod(two).IsZero():
		// tie next to an even number rounds up to the odd one
		units = floor.Add(one)
	default:
		units = floor
	}

	if d.IsNegative() {
		units = units.Neg()
	}
	return units.Shift(-places)
}

// Adjust applies the merchant multiplier to a carrier price and rounds
// the result at cent precision. Multipliers at or below 1.0 leave the
// carrier price untouched; the plugin only ever marks prices up.
func Adjust(amount decimal.Decimal, multiplier float64, mode entities.RoundingMode) decimal.Decimal {
	if multiplier > 1.0 {
		amount = amount.Mul(decimal.NewFromFloat(multiplier))
	}
	return Round(amount, 2, mode)
}
