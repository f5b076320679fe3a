package signup

import (
	"context"
	"errors"
	"fmt"
)

// ErrUpstream is returned when the signup endpoint answers with a non-2xx
// status or cannot be reached.
var ErrUpstream = errors.New("signup upstream error")

// UpstreamError carries the upstream HTTP status for error mapping.
type UpstreamError struct {
	Status int
	cause  error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "signup upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("signup upstream error (status=%d)", e.Status)
	}
	return fmt.Sprintf("signup upstream error (status=%d): %v", e.Status, e.cause)
}

// Unwrap enables errors.Is against ErrUpstream.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Registration is the normalized submission payload. The CPF, phone,
// cellphone and CEP fields must already be unmasked digit strings.
type Registration struct {
	TaxID            string `json:"cpf"`
	BirthDate        string `json:"birth_date"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Mobile           string `json:"cellphone"`
	PostalCode       string `json:"cep"`
	District         string `json:"district"`
	City             string `json:"city"`
	Region           string `json:"state"`
	Street           string `json:"street"`
	Number           string `json:"number"`
	Complement       string `json:"complement"`
	ChipType         string `json:"chip_type"`
	Coupon           string `json:"coupon"`
	PlanID           string `json:"plan_id"`
	Shipping         bool   `json:"delivery"`
	RepresentativeID string `json:"representative_id"`
	Token            string `json:"_token"`
}

// Service defines the registration submission.
type Service interface {
	// Submit persists a registration. Any 2xx upstream status is success;
	// everything else is an error. The call is all-or-nothing: there is
	// nothing to roll back on failure.
	Submit(ctx context.Context, reg Registration) error
}
