// Package pac speaks Australia Post's Postage Assessment Calculation API:
// it assembles postage requests from packed boxes and parses the carrier's
// responses.
package pac

import (
	"fmt"
	"math"
	"strings"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/ausship/auspost-rate-service/internal/guidelines"
	"github.com/ausship/auspost-rate-service/pkg/measure"
	"github.com/shopspring/decimal"
)

// InsuranceOptions is the merchant's extra cover policy for one request.
type InsuranceOptions struct {
	Enabled bool

	// Percentage of the order total to insure, in percent.
	Percentage float64

	// Limit caps the insured amount at the service's extra cover maximum.
	Limit bool

	OrderTotal decimal.Decimal
}

// Dimensions are the wire form of a packed box: whole centimetres rounded
// up and the chargeable weight in kilograms.
type Dimensions struct {
	Length int
	Width  int
	Height int
	Weight float64
}

// RequestBuilder assembles a Request field by field. Build validates that
// everything mandatory was provided, so a built Request is always usable.
type RequestBuilder struct {
	guide *guidelines.Guidelines

	service    entities.ServiceDefinition
	hasService bool

	address    entities.Address
	hasAddress bool

	box    entities.PackedBox
	hasBox bool

	insurance    InsuranceOptions
	hasInsurance bool
}

func NewRequestBuilder(guide *guidelines.Guidelines) *RequestBuilder {
	return &RequestBuilder{guide: guide}
}

func (b *RequestBuilder) Service(s entities.ServiceDefinition) *RequestBuilder {
	b.service = s
	b.hasService = true
	return b
}

func (b *RequestBuilder) Address(a entities.Address) *RequestBuilder {
	b.address = a
	b.hasAddress = true
	return b
}

func (b *RequestBuilder) PackedBox(box entities.PackedBox) *RequestBuilder {
	b.box = box
	b.hasBox = true
	return b
}

// Insurance must be provided before the request is sent to the carrier;
// pass a disabled InsuranceOptions to request no cover.
func (b *RequestBuilder) Insurance(opts InsuranceOptions) *RequestBuilder {
	b.insurance = opts
	b.hasInsurance = true
	return b
}

// Build validates the collected fields and produces an immutable Request.
func (b *RequestBuilder) Build() (*Request, error) {
	var missing []string
	if !b.hasService {
		missing = append(missing, "service")
	}
	if !b.hasAddress {
		missing = append(missing, "address")
	}
	if !b.hasBox {
		missing = append(missing, "packed box")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", entities.ErrRequestNotSet, strings.Join(missing, ", "))
	}

	if err := b.service.Validate(); err != nil {
		return nil, err
	}
	if _, err := b.address.IsDomestic(); err != nil {
		return nil, err
	}

	return &Request{
		guide:        b.guide,
		service:      b.service,
		address:      b.address,
		box:          b.box,
		insurance:    b.insurance,
		hasInsurance: b.hasInsurance,
	}, nil
}

// Request is one fully assembled postage calculation: a service, a packed
// box and the addresses it travels between.
type Request struct {
	guide        *guidelines.Guidelines
	service      entities.ServiceDefinition
	address      entities.Address
	box          entities.PackedBox
	insurance    InsuranceOptions
	hasInsurance bool
}

func (r *Request) Service() entities.ServiceDefinition {
	return r.service
}

func (r *Request) Address() entities.Address {
	return r.address
}

func (r *Request) IsDomestic() bool {
	domestic, _ := r.address.IsDomestic()
	return domestic
}

func (r *Request) IsParcel() bool {
	return r.service.Type == entities.ServiceTypeParcel
}

// Dimensions returns the box measurements the way the carrier wants
// them. Lengths round up to whole centimetres; the weight is the
// chargeable shipping weight in kilograms.
func (r *Request) Dimensions() Dimensions {
	shipping := r.guide.ShippingWeight(r.box.Volume, r.box.Weight)
	return Dimensions{
		Length: r.box.Length.CeilValue(measure.Centimetre),
		Width:  r.box.Width.CeilValue(measure.Centimetre),
		Height: r.box.Height.CeilValue(measure.Centimetre),
		Weight: shipping.Convert(measure.Kilogram).Value(),
	}
}

// InsuranceAmount computes the whole-dollar extra cover for this request.
// Zero means no cover is requested: insurance disabled, a service without
// extra cover, or an order worth nothing.
func (r *Request) InsuranceAmount() (int, error) {
	if !r.hasInsurance {
		return 0, fmt.Errorf("%w: insurance options", entities.ErrRequestNotSet)
	}
	if !r.insurance.Enabled || r.service.ExtraCover == 0 {
		return 0, nil
	}

	total, _ := r.insurance.OrderTotal.Float64()
	amount := int(math.Ceil(total * r.insurance.Percentage / 100))
	if amount <= 0 {
		return 0, nil
	}
	if r.insurance.Limit && amount > r.service.ExtraCover {
		amount = r.service.ExtraCover
	}
	return amount, nil
}

// ExtraServiceOptions returns the service's option codes under the query
// parameter names the carrier expects.
func (r *Request) ExtraServiceOptions() map[string]string {
	opts := r.service.Options()
	wire := make(map[string]string, len(opts))
	for key, value := range opts {
		switch key {
		case "sub_opt_code":
			wire["suboption_code"] = value
		default:
			wire[key] = value
		}
	}
	return wire
}
