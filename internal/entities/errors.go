package entities

import "errors"

var (
	// ErrConfiguration is terminal: no rates can be calculated at all.
	ErrConfiguration = errors.New("shipping method is not configured")

	// ErrPackageSize marks a package type that fails AusPost size guidelines.
	// Raised at box admission time; the offending type is skipped.
	ErrPackageSize = errors.New("package exceeds size guidelines")

	// ErrItemTooLarge means no candidate box can contain an item. The
	// affected service is skipped, the overall calculation continues.
	ErrItemTooLarge = errors.New("no package type large enough for item")

	// ErrRequestNotSet is a programming contract violation: a request
	// field was used before being set.
	ErrRequestNotSet = errors.New("required request field is not set")

	// ErrDestinationUndetermined means the shipment address is missing so
	// domestic vs international cannot be decided.
	ErrDestinationUndetermined = errors.New("package destination could not be determined")

	ErrClient   = errors.New("auspost client error")
	ErrResponse = errors.New("invalid auspost response")

	ErrUnknownDestination = errors.New("unknown package destination")
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrUnknownService     = errors.New("unknown service")
)
