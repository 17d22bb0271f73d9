package handler

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

// RateRequest is a shipment to price. The shipper side comes from store
// configuration, so only the recipient address travels in the request.
type RateRequest struct {
	OrderID    string          `json:"order_id,omitempty"`
	OrderTotal decimal.Decimal `json:"order_total"`
	Recipient  Address         `json:"recipient"`
	Items      []Item          `json:"items" validate:"required,min=1,dive"`
}

// Address is one side of a shipment. Postcode arrives as a string because
// that is how commerce platforms store it.
type Address struct {
	Postcode    string `json:"postcode,omitempty" validate:"omitempty,numeric"`
	CountryCode string `json:"country_code,omitempty" validate:"omitempty,len=2"`
}

type Item struct {
	Title    string `json:"title" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`

	Weight     Weight          `json:"weight"`
	Dimensions Dimensions      `json:"dimensions"`
	UnitValue  decimal.Decimal `json:"unit_value"`
}

type Weight struct {
	Value float64 `json:"value" validate:"gte=0"`
	Unit  string  `json:"unit,omitempty" validate:"omitempty,oneof=g kg"`
}

type Dimensions struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Unit   string  `json:"unit,omitempty" validate:"omitempty,oneof=mm cm m"`
}

type RateResponse struct {
	Rates []Rate `json:"rates"`
}

type Rate struct {
	ServiceID string          `json:"service_id"`
	Label     string          `json:"label"`
	Amount    decimal.Decimal `json:"amount"`
}

// ShipmentToEntity merges the request with the store's own address.
func ShipmentToEntity(req RateRequest, shipperPostcode int, shipperCountry string) entities.Shipment {
	recipientPostcode, _ := strconv.Atoi(req.Recipient.Postcode)

	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ItemToEntity(item))
	}

	return entities.Shipment{
		OrderID: req.OrderID,
		Address: entities.Address{
			ShipperPostcode:   shipperPostcode,
			ShipperCountry:    shipperCountry,
			RecipientPostcode: recipientPostcode,
			RecipientCountry:  req.Recipient.CountryCode,
		},
		Items:      items,
		OrderTotal: req.OrderTotal,
	}
}

func ItemToEntity(item Item) entities.OrderItem {
	weightUnit := measure.WeightUnit(item.Weight.Unit)
	if weightUnit == "" {
		weightUnit = measure.Kilogram
	}
	lengthUnit := measure.LengthUnit(item.Dimensions.Unit)
	if lengthUnit == "" {
		lengthUnit = measure.Centimetre
	}

	return entities.OrderItem{
		Title:     item.Title,
		Quantity:  item.Quantity,
		Weight:    measure.NewWeight(item.Weight.Value, weightUnit),
		Length:    measure.NewLength(item.Dimensions.Length, lengthUnit),
		Width:     measure.NewLength(item.Dimensions.Width, lengthUnit),
		Height:    measure.NewLength(item.Dimensions.Height, lengthUnit),
		UnitValue: item.UnitValue,
	}
}

func RatesToJSON(rates []entities.ShippingRate) RateResponse {
	out := make([]Rate, 0, len(rates))
	for _, rate := range rates {
		out = append(out, Rate{
			ServiceID: rate.ServiceID,
			Label:     rate.Label,
			Amount:    rate.Amount,
		})
	}
	return RateResponse{Rates: out}
}
