package entities

import "fmt"

// Destination of a postage service or package type.
type Destination string

const (
	DestinationDomestic      Destination = "domestic"
	DestinationInternational Destination = "international"
)

func (d Destination) Validate() error {
	switch d {
	case DestinationDomestic, DestinationInternational:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownDestination, string(d))
}

// ServiceType distinguishes parcel from letter postage products.
type ServiceType string

const (
	ServiceTypeParcel ServiceType = "parcel"
	ServiceTypeLetter ServiceType = "letter"
)

func (t ServiceType) Validate() error {
	switch t {
	case ServiceTypeParcel, ServiceTypeLetter:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownServiceType, string(t))
}

// AusPost PAC service codes.
const (
	CodeParcelRegular   = "AUS_PARCEL_REGULAR"
	CodeParcelExpress   = "AUS_PARCEL_EXPRESS"
	CodeParcelCourier   = "AUS_PARCEL_COURIER"
	CodeIntlParcelAir   = "INT_PARCEL_AIR_OWN_PACKAGING"
	CodeLetterRegularSm = "AUS_LETTER_REGULAR_SMALL"
	CodeLetterRegularLg = "AUS_LETTER_REGULAR_LARGE"
)

// AusPost PAC service option codes.
const (
	OptionStandard     = "AUS_SERVICE_OPTION_STANDARD"
	OptionSignature    = "AUS_SERVICE_OPTION_SIGNATURE_ON_DELIVERY"
	OptionExtraCover   = "AUS_SERVICE_OPTION_EXTRA_COVER"
	OptionIntSignature = "INT_SIGNATURE_ON_DELIVERY"
	OptionIntExtra     = "INT_EXTRA_COVER"
)

var knownServiceCodes = map[string]struct{}{
	CodeParcelRegular:   {},
	CodeParcelExpress:   {},
	CodeParcelCourier:   {},
	CodeIntlParcelAir:   {},
	CodeLetterRegularSm: {},
	CodeLetterRegularLg: {},
}

// ServiceDefinition is one purchasable postage product: a carrier service
// code plus option/sub-option codes, an extra-cover cap and display strings.
type ServiceDefinition struct {
	ID            string
	Title         string
	DisplayTitle  string
	Description   string
	Type          ServiceType
	Destination   Destination
	ServiceCode   string
	OptionCode    string
	SubOptionCode string

	// ExtraCover is the maximum insurable amount in whole AUD; zero means
	// the service carries no extra cover at all.
	ExtraCover int

	// MaxDimensions bounds letter-type services; nil for parcels.
	MaxDimensions *LetterDimensions
}

// LetterDimensions are letter limits in millimetres / grams.
type LetterDimensions struct {
	Length    int
	Width     int
	Thickness int
	Weight    int
}

func (s ServiceDefinition) Validate() error {
	if err := s.Destination.Validate(); err != nil {
		return fmt.Errorf("service %q: %w", s.ID, err)
	}
	if err := s.Type.Validate(); err != nil {
		return fmt.Errorf("service %q: %w", s.ID, err)
	}
	if _, ok := knownServiceCodes[s.ServiceCode]; !ok {
		return fmt.Errorf("%w: service %q has unknown code %q", ErrUnknownService, s.ID, s.ServiceCode)
	}
	return nil
}

// Options returns the service's option codes keyed by their internal names,
// omitting empty values. Extra cover is handled separately because the
// value sent over the wire depends on the order, not the service.
func (s ServiceDefinition) Options() map[string]string {
	opts := make(map[string]string, 2)
	if s.OptionCode != "" {
		opts["option_code"] = s.OptionCode
	}
	if s.SubOptionCode != "" {
		opts["sub_opt_code"] = s.SubOptionCode
	}
	return opts
}
