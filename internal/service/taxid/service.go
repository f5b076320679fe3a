package taxid

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrUnauthorized = errors.New("tax id service rejected credentials")
	ErrUpstream     = errors.New("tax id service upstream error")
)

// UpstreamError carries the upstream HTTP status for error mapping.
type UpstreamError struct {
	Status int
	cause  error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "tax id service upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("tax id service upstream error (status=%d)", e.Status)
	}
	return fmt.Sprintf("tax id service upstream error (status=%d): %v", e.Status, e.cause)
}

// Unwrap enables errors.Is against the sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Person is the result of a CPF verification. Either field may be empty;
// callers apply them independently.
type Person struct {
	Name      string
	BirthDate string
}

// Service defines the tax-ID verification lookup.
type Service interface {
	// Verify resolves an unmasked 11-digit CPF to the registered name and
	// birth date.
	Verify(ctx context.Context, cpf string) (*Person, error)
}
