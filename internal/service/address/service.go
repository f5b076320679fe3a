package address

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrNotFound = errors.New("postal code not found")
	ErrUpstream = errors.New("address service upstream error")
)

// UpstreamError carries the upstream HTTP status for error mapping.
type UpstreamError struct {
	Status int
	cause  error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "address service upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("address service upstream error (status=%d)", e.Status)
	}
	return fmt.Sprintf("address service upstream error (status=%d): %v", e.Status, e.cause)
}

// Unwrap enables errors.Is against the sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Address is the result of a postal code lookup.
type Address struct {
	Street   string
	District string
	City     string
	Region   string
}

// Service defines the postal-code-to-address lookup.
type Service interface {
	// Lookup resolves an unmasked 8-digit postal code to an address.
	// A known-but-unassigned code yields ErrNotFound.
	Lookup(ctx context.Context, cep string) (*Address, error)
}
