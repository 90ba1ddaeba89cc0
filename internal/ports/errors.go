package ports

import "errors"

// Standard application-level errors.
// Calculation packages and adapters wrap underlying failures with these
// so callers can branch on errors.Is without knowing the layer.
var (
	// ErrInvalidInput fires on non-positive prices/amounts/position sizes
	// or values not representable as a finite number. Callers must not
	// display a derived figure when this is returned.
	ErrInvalidInput = errors.New("invalid input value")

	// ErrInvalidTimestamp fires on an unparsable or missing timestamp
	// passed to staleness or duration logic.
	ErrInvalidTimestamp = errors.New("invalid or missing timestamp")

	ErrNotFound           = errors.New("resource not found")
	ErrConfigurationError = errors.New("invalid or missing configuration")
	ErrQueryFailed        = errors.New("store query failed")
)
