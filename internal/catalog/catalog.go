// Package catalog holds the closed table of supported AusPost postage
// services. Services are enumerated statically; configuration only decides
// which of them are enabled.
package catalog

import (
	"fmt"

	"github.com/ausship/auspost-rate-service/internal/entities"
)

// Catalog is an ordered, immutable table of service definitions.
type Catalog struct {
	keys     []string
	services map[string]entities.ServiceDefinition
}

// New builds the catalog of all supported services. The order matches the
// carrier's product listing and is the order rates are returned in.
func New() *Catalog {
	defs := definitions()
	c := &Catalog{
		keys:     make([]string, 0, len(defs)),
		services: make(map[string]entities.ServiceDefinition, len(defs)),
	}
	for _, def := range defs {
		c.keys = append(c.keys, def.ID)
		c.services[def.ID] = def
	}
	return c
}

func (c *Catalog) Has(key string) bool {
	_, ok := c.services[key]
	return ok
}

func (c *Catalog) Get(key string) (entities.ServiceDefinition, error) {
	def, ok := c.services[key]
	if !ok {
		return entities.ServiceDefinition{}, fmt.Errorf("%w: %q", entities.ErrUnknownService, key)
	}
	return def, nil
}

// All returns every service in catalog order.
func (c *Catalog) All() []entities.ServiceDefinition {
	out := make([]entities.ServiceDefinition, 0, len(c.keys))
	for _, key := range c.keys {
		out = append(out, c.services[key])
	}
	return out
}

// Filter returns services matching the given type and destination, in
// catalog order. Empty arguments match everything.
func (c *Catalog) Filter(t entities.ServiceType, dest entities.Destination) ([]entities.ServiceDefinition, error) {
	if t != "" {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	if dest != "" {
		if err := dest.Validate(); err != nil {
			return nil, err
		}
	}

	var out []entities.ServiceDefinition
	for _, key := range c.keys {
		def := c.services[key]
		if t != "" && def.Type != t {
			continue
		}
		if dest != "" && def.Destination != dest {
			continue
		}
		out = append(out, def)
	}
	return out, nil
}

// ByKeys resolves a set of service keys to definitions, preserving catalog
// order. Unknown keys either fail the lookup or are silently dropped.
func (c *Catalog) ByKeys(keys []string, ignoreMissing bool) ([]entities.ServiceDefinition, error) {
	requested := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if !c.Has(key) && !ignoreMissing {
			return nil, fmt.Errorf("%w: %q", entities.ErrUnknownService, key)
		}
		requested[key] = struct{}{}
	}

	var out []entities.ServiceDefinition
	for _, key := range c.keys {
		if _, ok := requested[key]; ok {
			out = append(out, c.services[key])
		}
	}
	return out, nil
}

// SupportedDestinations lists every destination a service can ship to.
func SupportedDestinations() []entities.Destination {
	return []entities.Destination{
		entities.DestinationDomestic,
		entities.DestinationInternational,
	}
}

// SupportedServiceTypes lists every package type services exist for.
func SupportedServiceTypes() []entities.ServiceType {
	return []entities.ServiceType{
		entities.ServiceTypeParcel,
		entities.ServiceTypeLetter,
	}
}

// definitions enumerates every active AusPost service. Letter services are
// deliberately absent: AusPost's letter rate endpoints reject most of the
// documented option combinations, so only parcel products are offered.
func definitions() []entities.ServiceDefinition {
	return []entities.ServiceDefinition{
		// Domestic parcel services.
		{
			ID:           "AUS_SERVICE_OPTION_STANDARD",
			Title:        "Regular, Standard",
			DisplayTitle: "Standard Post",
			Description:  "Australia Post - 2-6 Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationDomestic,
			ServiceCode:  entities.CodeParcelRegular,
			OptionCode:   entities.OptionStandard,
		},
		{
			ID:           "AUS_SERVICE_OPTION_SIGNATURE",
			Title:        "Regular, Signature required",
			DisplayTitle: "Standard Post, Signature required",
			Description:  "Australia Post - 2-6 Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationDomestic,
			ServiceCode:  entities.CodeParcelRegular,
			OptionCode:   entities.OptionSignature,
		},
		{
			ID:            "AUS_SERVICE_OPTION_INS",
			Title:         "Regular, Insured",
			DisplayTitle:  "Standard Post (Insured)",
			Description:   "Australia Post - 2-6 Days",
			Type:          entities.ServiceTypeParcel,
			Destination:   entities.DestinationDomestic,
			ServiceCode:   entities.CodeParcelRegular,
			OptionCode:    entities.OptionStandard,
			SubOptionCode: entities.OptionExtraCover,
			ExtraCover:    300,
		},
		{
			ID:            "AUS_SERVICE_OPTION_SIG_INS",
			Title:         "Regular, Signature required, Insured",
			DisplayTitle:  "Standard Post (Insured), Signature required",
			Description:   "Australia Post - 2-6 Days",
			Type:          entities.ServiceTypeParcel,
			Destination:   entities.DestinationDomestic,
			ServiceCode:   entities.CodeParcelRegular,
			OptionCode:    entities.OptionSignature,
			SubOptionCode: entities.OptionExtraCover,
			ExtraCover:    5000,
		},
		{
			ID:           "AUS_PARCEL_EXPRESS",
			Title:        "Express Post",
			DisplayTitle: "Express Post",
			Description:  "Australia Post - 1-3 Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationDomestic,
			ServiceCode:  entities.CodeParcelExpress,
			OptionCode:   entities.OptionStandard,
		},
		{
			ID:           "AUS_PARCEL_EXPRESS_SIGNATURE",
			Title:        "Express Post, Signature required",
			DisplayTitle: "Express Post, Signature required",
			Description:  "Australia Post - 1-3 Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationDomestic,
			ServiceCode:  entities.CodeParcelExpress,
			OptionCode:   entities.OptionSignature,
		},
		{
			ID:            "AUS_PARCEL_EXPRESS_INS",
			Title:         "Express Post, Insured",
			DisplayTitle:  "Express Post (Insured)",
			Description:   "Australia Post - 1-3 Days",
			Type:          entities.ServiceTypeParcel,
			Destination:   entities.DestinationDomestic,
			ServiceCode:   entities.CodeParcelExpress,
			OptionCode:    entities.OptionStandard,
			SubOptionCode: entities.OptionExtraCover,
			ExtraCover:    300,
		},
		{
			ID:            "AUS_PARCEL_EXPRESS_SIG_INS",
			Title:         "Express Post, Signature reqd, Insured",
			DisplayTitle:  "Express Post (Insured), Signature required",
			Description:   "Australia Post - 1-3 Days",
			Type:          entities.ServiceTypeParcel,
			Destination:   entities.DestinationDomestic,
			ServiceCode:   entities.CodeParcelExpress,
			OptionCode:    entities.OptionSignature,
			SubOptionCode: entities.OptionExtraCover,
			ExtraCover:    5000,
		},
		{
			ID:           "AUS_PARCEL_COURIER",
			Title:        "Courier Post",
			DisplayTitle: "Courier Post",
			Description:  "Australia Post - Same Day Delivery",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationDomestic,
			ServiceCode:  entities.CodeParcelCourier,
			OptionCode:   entities.OptionStandard,
		},
		{
			ID:            "AUS_PARCEL_COUR_INS",
			Title:         "Courier Post, Insured",
			DisplayTitle:  "Courier Post (Insured)",
			Description:   "Australia Post - Same Day Delivery",
			Type:          entities.ServiceTypeParcel,
			Destination:   entities.DestinationDomestic,
			ServiceCode:   entities.CodeParcelCourier,
			OptionCode:    entities.OptionStandard,
			SubOptionCode: entities.OptionExtraCover,
			ExtraCover:    5000,
		},
		// International parcel services.
		{
			ID:           "INT_PARCEL_AIR_OWN_PACKAGING",
			Title:        "Int Economy Air",
			DisplayTitle: "International Economy Air",
			Description:  "Australia Post - 10+ Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationInternational,
			ServiceCode:  entities.CodeIntlParcelAir,
		},
		{
			ID:           "INT_PARCEL_AIR_OWN_PACK_SIG",
			Title:        "Int Economy Air, Signature required",
			DisplayTitle: "International Economy Air, Signature required",
			Description:  "Australia Post - 10+ Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationInternational,
			ServiceCode:  entities.CodeIntlParcelAir,
			OptionCode:   entities.OptionIntSignature,
		},
		{
			ID:           "INT_PARCEL_AIR_OWN_PACK_INS",
			Title:        "Int Economy Air, Insured",
			DisplayTitle: "International Economy Air (Insured)",
			Description:  "Australia Post - 10+ Days",
			Type:         entities.ServiceTypeParcel,
			Destination:  entities.DestinationInternational,
			ServiceCode:  entities.CodeIntlParcelAir,
			OptionCode:   entities.OptionIntExtra,
			ExtraCover:   5000,
		},
	}
}
