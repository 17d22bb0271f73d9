package catalog

import (
	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

// BuiltinPackageTypes returns the stock AusPost satchels and boxes for a
// destination. Used when no package types are stored for the merchant.
func BuiltinPackageTypes(dest entities.Destination) []entities.PackageType {
	var out []entities.PackageType
	for _, pt := range builtinPackageTypes() {
		if pt.Destination == dest {
			out = append(out, pt)
		}
	}
	return out
}

func builtinPackageTypes() []entities.PackageType {
	mk := func(label string, length, width, height float64, tare float64, dest entities.Destination) entities.PackageType {
		return entities.PackageType{
			Label:       label,
			Length:      measure.NewLength(length, measure.Centimetre),
			Width:       measure.NewLength(width, measure.Centimetre),
			Height:      measure.NewLength(height, measure.Centimetre),
			Weight:      measure.NewWeight(tare, measure.Gram),
			Destination: dest,
		}
	}
	return []entities.PackageType{
		mk("Small satchel", 35.5, 22.5, 8, 50, entities.DestinationDomestic),
		mk("Medium satchel", 39, 27, 12, 75, entities.DestinationDomestic),
		mk("Large satchel", 41, 31, 16, 100, entities.DestinationDomestic),
		mk("Bx1 box", 22, 16, 7.7, 175, entities.DestinationDomestic),
		mk("Bx2 box", 31, 22.5, 10.2, 300, entities.DestinationDomestic),
		mk("Bx4 box", 43, 30.5, 14, 450, entities.DestinationDomestic),
		mk("Bx5 box", 40.5, 30, 25.5, 600, entities.DestinationDomestic),
		mk("Mailing box small", 24, 19, 12.4, 250, entities.DestinationInternational),
		mk("Mailing box medium", 31.5, 22.5, 10.5, 350, entities.DestinationInternational),
		mk("Mailing box large", 40.5, 30, 25.5, 600, entities.DestinationInternational),
	}
}
