package pac

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ausship/auspost-rate-service/internal/entities"
	"github.com/shopspring/decimal"
)

// money tolerates both of the carrier's cost encodings: a quoted string
// ("13.40") and a bare JSON number.
type money struct {
	value decimal.Decimal
	set   bool
}

func (m *money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		value, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("parse cost %q: %w", s, err)
		}
		m.value = value
		m.set = true
		return nil
	}
	value, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("parse cost %s: %w", data, err)
	}
	m.value = value
	m.set = true
	return nil
}

type postageResult struct {
	Service      string `json:"service"`
	DeliveryTime string `json:"delivery_time"`
	TotalCost    money  `json:"total_cost"`
}

type apiError struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Message string `json:"errorMessage"`
}

// Response is one parsed PAC calculate response.
type Response struct {
	PostageResult *postageResult `json:"postage_result"`
	Error         *apiError      `json:"error"`
}

// ParseResponse decodes a calculate response body without judging it;
// Postage decides whether it actually carries a price.
func ParseResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", entities.ErrResponse, err)
	}
	return &resp, nil
}

// Postage extracts the total cost. A carrier error or a result without a
// total cost yields ErrResponse.
func (r *Response) Postage() (decimal.Decimal, error) {
	if r.Error != nil {
		msg := r.Error.Message
		if msg == "" {
			msg = r.Error.Name
		}
		return decimal.Decimal{}, fmt.Errorf("%w: carrier error: %s", entities.ErrResponse, msg)
	}
	if r.PostageResult == nil || !r.PostageResult.TotalCost.set {
		return decimal.Decimal{}, fmt.Errorf("%w: no total cost in result", entities.ErrResponse)
	}
	return r.PostageResult.TotalCost.value, nil
}

// Service returns the carrier's display name for the priced service.
func (r *Response) Service() string {
	if r.PostageResult == nil {
		return ""
	}
	return r.PostageResult.Service
}
