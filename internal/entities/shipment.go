package entities

import (
	"github.com/ausship/auspost-rate-service/pkg/measure"
	"github.com/shopspring/decimal"
)

// Address holds the postcodes and country codes of both ends of a
// shipment. It is derived fresh for every rate calculation.
type Address struct {
	ShipperPostcode   int
	ShipperCountry    string
	RecipientPostcode int
	RecipientCountry  string
}

// Empty reports whether the recipient side of the address is absent.
// Shipments without a destination are legitimate (the buyer hasn't filled
// in their address yet), so this is not an error condition.
func (a Address) Empty() bool {
	return a.RecipientCountry == "" && a.RecipientPostcode == 0
}

// IsDomestic reports whether the recipient is in the shipper's country.
func (a Address) IsDomestic() (bool, error) {
	if a.Empty() {
		return false, ErrDestinationUndetermined
	}
	return a.RecipientCountry == a.ShipperCountry, nil
}

// OrderItem is a purchasable line item with the physical data needed for
// packing. Weight and dimensions are zero when the product lacks them.
type OrderItem struct {
	Title    string
	Quantity int
	Weight   measure.Weight
	Length   measure.Length
	Width    measure.Length
	Height   measure.Length

	// UnitValue is the declared per-unit value in AUD.
	UnitValue decimal.Decimal
}

// Shipment is the minimal read-only view of an order that rate
// calculation needs.
type Shipment struct {
	OrderID    string
	Address    Address
	Items      []OrderItem
	OrderTotal decimal.Decimal
}

// PackageType is a candidate shipping box. Outer dimensions equal inner
// dimensions: the platform has no wall-thickness model.
type PackageType struct {
	Label       string
	Length      measure.Length
	Width       measure.Length
	Height      measure.Length
	Weight      measure.Weight
	Destination Destination
}
