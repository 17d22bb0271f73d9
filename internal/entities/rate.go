package entities

import (
	"time"

	"github.com/ausship/auspost-rate-service/pkg/measure"
	"github.com/shopspring/decimal"
)

// PackedBox is the outcome of packing one physical box: the box that was
// used, what went into it and the resulting totals.
type PackedBox struct {
	Reference string

	// Weight includes the tare weight of the box itself.
	Weight measure.Weight

	Length measure.Length
	Width  measure.Length
	Height measure.Length
	Volume measure.Volume

	RemainingWeight measure.Weight

	// Utilisation is the used share of the box volume as a percentage.
	Utilisation float64

	// Items lists the descriptions of the packed items, one entry per
	// physical unit.
	Items []string
}

// ShippingRate is the final price for one postage service, after the
// multiplier and rounding were applied and all boxes were summed.
type ShippingRate struct {
	ServiceID string          `json:"service_id"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
}

// Quote is the audit record of one completed rate calculation.
type Quote struct {
	QuoteID           string
	OrderID           string
	RecipientPostcode int
	RecipientCountry  string
	OrderTotal        decimal.Decimal
	Rates             []ShippingRate
	CreatedAt         time.Time
}
