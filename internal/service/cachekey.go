package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/pkg/measure"
)

// cacheKeyPayload flattens a shipment and the pricing-relevant options
// into plain values, so the digest is stable across processes.
type cacheKeyPayload struct {
	OrderID         string   `json:"order_id"`
	FromPostcode    int      `json:"from_postcode"`
	FromCountry     string   `json:"from_country"`
	ToPostcode      int      `json:"to_postcode"`
	ToCountry       string   `json:"to_country"`
	OrderTotal      string   `json:"order_total"`
	Items           []string `json:"items"`
	EnabledServices []string `json:"enabled_services"`
	Insurance       bool     `json:"insurance"`
	InsurancePct    float64  `json:"insurance_pct"`
	InsuranceLimit  bool     `json:"insurance_limit"`
	Multiplier      float64  `json:"multiplier"`
	Rounding        string   `json:"rounding"`
}

type cacheKeyItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	LengthMM int    `json:"length_mm"`
	WidthMM  int    `json:"width_mm"`
	HeightMM int    `json:"height_mm"`
	WeightG  int    `json:"weight_g"`
	Value    string `json:"value"`
}

// cacheKey digests everything that can change the quoted rates.
func (s *rateService) cacheKey(shipment entities.Shipment) (string, error) {
	payload := cacheKeyPayload{
		OrderID:         shipment.OrderID,
		FromPostcode:    shipment.Address.ShipperPostcode,
		FromCountry:     shipment.Address.ShipperCountry,
		ToPostcode:      shipment.Address.RecipientPostcode,
		ToCountry:       shipment.Address.RecipientCountry,
		OrderTotal:      shipment.OrderTotal.String(),
		EnabledServices: s.opts.EnabledServices,
		Insurance:       s.opts.InsuranceEnabled,
		InsurancePct:    s.opts.InsurancePercentage,
		InsuranceLimit:  s.opts.InsuranceLimit,
		Multiplier:      s.opts.RateMultiplier,
		Rounding:        string(s.opts.Rounding),
	}

	for _, item := range shipment.Items {
		entry, err := json.Marshal(cacheKeyItem{
			Title:    item.Title,
			Quantity: item.Quantity,
			LengthMM: item.Length.CeilValue(measure.Millimetre),
			WidthMM:  item.Width.CeilValue(measure.Millimetre),
			HeightMM: item.Height.CeilValue(measure.Millimetre),
			WeightG:  item.Weight.CeilValue(measure.Gram),
			Value:    item.UnitValue.String(),
		})
		if err != nil {
			return "", err
		}
		payload.Items = append(payload.Items, string(entry))
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
