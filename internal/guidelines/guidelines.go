// Package guidelines enforces Australia Post's physical size and weight
// guidelines and implements the cubic weight rules used to price bulky,
// low-density parcels.
//
// See https://auspost.com.au/parcels-mail/postage-tips-guides/size-weight-guidelines
package guidelines

import (
	"fmt"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

// CubicWeightDensity is the kg/m3 density AusPost uses to convert parcel
// volume into a chargeable weight.
const CubicWeightDensity = 250

// cubic weight only ever replaces the actual weight above this floor
var cubicWeightFloor = measure.NewWeight(1, measure.Kilogram)

// MaxDimensions bounds a parcel for one destination. Volume is only set
// for domestic parcels, Girth only for international ones.
type MaxDimensions struct {
	Length measure.Length
	Weight measure.Weight
	Volume measure.Volume
	Girth  measure.Length
}

type Guidelines struct {
	limits map[entities.Destination]MaxDimensions
}

func New() *Guidelines {
	return &Guidelines{
		limits: map[entities.Destination]MaxDimensions{
			entities.DestinationDomestic: {
				Length: measure.NewLength(105, measure.Centimetre),
				Weight: measure.NewWeight(22, measure.Kilogram),
				Volume: measure.NewVolume(0.25, measure.CubicMetre),
			},
			entities.DestinationInternational: {
				Length: measure.NewLength(105, measure.Centimetre),
				Weight: measure.NewWeight(20, measure.Kilogram),
				Girth:  measure.NewLength(140, measure.Centimetre),
			},
		},
	}
}

// MaxParcelDimensions returns AusPost's limits for the given destination.
func (g *Guidelines) MaxParcelDimensions(dest entities.Destination) (MaxDimensions, error) {
	limits, ok := g.limits[dest]
	if !ok {
		return MaxDimensions{}, fmt.Errorf("%w: %q", entities.ErrUnknownDestination, string(dest))
	}
	return limits, nil
}

// CubicWeight converts a parcel volume into its chargeable weight
// equivalent: volume in cubic metres times the carrier density.
func (g *Guidelines) CubicWeight(volume measure.Volume) measure.Weight {
	m3 := volume.Convert(measure.CubicMetre).Value()
	return measure.NewWeight(m3*CubicWeightDensity, measure.Kilogram)
}

// ShippingWeight picks the weight a parcel is charged at. Cubic weight
// only applies to parcels over 1 kg and only when it exceeds the actual
// weight; small, light parcels are always charged at actual weight.
func (g *Guidelines) ShippingWeight(volume measure.Volume, actual measure.Weight) measure.Weight {
	cubic := g.CubicWeight(volume)
	if actual.GreaterThan(cubicWeightFloor) && cubic.GreaterThan(actual) {
		return cubic
	}
	return actual
}

// ValidatePackageSize checks a box against the destination's guidelines:
// no edge longer than the max length, domestic parcels bounded by volume
// and cubic weight, international parcels bounded by girth on every pair
// of edges.
func (g *Guidelines) ValidatePackageSize(length, width, height measure.Length, dest entities.Destination) error {
	limits, err := g.MaxParcelDimensions(dest)
	if err != nil {
		return err
	}

	for _, edge := range []measure.Length{length, width, height} {
		if edge.GreaterThan(limits.Length) {
			return fmt.Errorf("%w: edge %.1fcm exceeds max length %.1fcm",
				entities.ErrPackageSize,
				edge.Convert(measure.Centimetre).Value(),
				limits.Length.Convert(measure.Centimetre).Value())
		}
	}

	switch dest {
	case entities.DestinationDomestic:
		volume := boxVolume(length, width, height)
		if volume.GreaterThan(limits.Volume) {
			return fmt.Errorf("%w: volume %.3fm3 exceeds max %.3fm3",
				entities.ErrPackageSize,
				volume.Convert(measure.CubicMetre).Value(),
				limits.Volume.Convert(measure.CubicMetre).Value())
		}
		if cubic := g.CubicWeight(volume); cubic.GreaterThan(limits.Weight) {
			return fmt.Errorf("%w: cubic weight %.1fkg exceeds max %.1fkg",
				entities.ErrPackageSize,
				cubic.Convert(measure.Kilogram).Value(),
				limits.Weight.Convert(measure.Kilogram).Value())
		}

	case entities.DestinationInternational:
		pairs := [][2]measure.Length{
			{length, width},
			{length, height},
			{width, height},
		}
		for _, pair := range pairs {
			girth := measure.NewLength(
				(pair[0].Convert(measure.Centimetre).Value()+pair[1].Convert(measure.Centimetre).Value())*2,
				measure.Centimetre,
			)
			if girth.GreaterThan(limits.Girth) {
				return fmt.Errorf("%w: girth %.1fcm exceeds max %.1fcm",
					entities.ErrPackageSize,
					girth.Value(),
					limits.Girth.Convert(measure.Centimetre).Value())
			}
		}
	}

	return nil
}

func boxVolume(length, width, height measure.Length) measure.Volume {
	l := length.Convert(measure.Metre).Value()
	w := width.Convert(measure.Metre).Value()
	h := height.Convert(measure.Metre).Value()
	return measure.NewVolume(l*w*h, measure.CubicMetre)
}
