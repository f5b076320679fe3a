package form

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	applog "github.com/clubechip/signup-api/internal/platform/logging"
	"github.com/clubechip/signup-api/internal/service/address"
	"github.com/clubechip/signup-api/internal/service/signup"
	"github.com/clubechip/signup-api/internal/service/taxid"
)

// Component errors.
var (
	// ErrValidation is returned by Submit when required fields are missing or
	// malformed. The per-field messages are available via FieldErrors.
	ErrValidation = errors.New("form validation failed")
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission has not finished yet.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// Operator is a mobile carrier. The selected operator gates which plans are
// selectable.
type Operator string

const (
	OperatorVivo  Operator = "vivo"
	OperatorClaro Operator = "claro"
	OperatorTIM   Operator = "tim"
)

// Chip fulfillment choices.
const (
	ChipPhysical = "physical"
	ChipESIM     = "esim"
)

// Plan is a subscription plan offered under a single carrier.
type Plan struct {
	ID   string
	Name string
}

// Catalog holds the selectable plans keyed by carrier.
type Catalog map[Operator][]Plan

// Representative is the referring agent context under which a registration
// is submitted. It is reference data only: displayed by the hosting page and
// forwarded as a foreign key in the payload.
type Representative struct {
	ID      string
	Name    string
	Contact string
}

// Data is the mutable record backing the registration form. The CPF, phone,
// cellphone and CEP fields hold display-masked values; Digits recovers the
// raw digit strings.
type Data struct {
	TaxID      string
	BirthDate  string
	Name       string
	Email      string
	Phone      string
	Mobile     string
	PostalCode string
	District   string
	City       string
	Region     string
	Street     string
	Number     string
	Complement string
	ChipType   string
	Coupon     string
	PlanID     string
	Shipping   bool
}

// Form is the registration workflow component: it collects input, applies
// display masks, enriches address and identity data on blur, validates on
// submit and forwards the normalized payload to the signup service.
//
// A browser form serializes its events on the UI thread; here a mutex plays
// that role, so blur enrichment may run from its own goroutine. There is
// deliberately no de-duplication or staleness protection for enrichment:
// overlapping lookups are allowed and the last response wins.
type Form struct {
	mu         sync.Mutex
	data       Data
	errs       Errors
	operator   Operator
	submitting bool

	rep     Representative
	token   string
	catalog Catalog

	address address.Service
	taxid   taxid.Service
	signup  signup.Service
}

// New creates an empty form for the given representative. The anti-forgery
// token and plan catalog come from configuration, not process-wide state.
func New(
	rep Representative,
	token string,
	catalog Catalog,
	addressSvc address.Service,
	taxidSvc taxid.Service,
	signupSvc signup.Service,
) *Form {
	return &Form{
		errs:    Errors{},
		rep:     rep,
		token:   token,
		catalog: catalog,
		address: addressSvc,
		taxid:   taxidSvc,
		signup:  signupSvc,
	}
}

// Set stores a field value, applying the display mask for the masked fields.
// Editing a field clears that field's validation error and no other.
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldTaxID:
		f.data.TaxID = MaskCPF(value)
	case FieldBirthDate:
		f.data.BirthDate = value
	case FieldName:
		f.data.Name = value
	case FieldEmail:
		f.data.Email = value
	case FieldPhone:
		f.data.Phone = MaskPhone(value)
	case FieldMobile:
		f.data.Mobile = MaskPhone(value)
	case FieldPostalCode:
		f.data.PostalCode = MaskCEP(value)
	case FieldDistrict:
		f.data.District = value
	case FieldCity:
		f.data.City = value
	case FieldRegion:
		f.data.Region = value
	case FieldStreet:
		f.data.Street = value
	case FieldNumber:
		f.data.Number = value
	case FieldComplement:
		f.data.Complement = value
	case FieldChipType:
		f.data.ChipType = value
	case FieldCoupon:
		f.data.Coupon = value
	case FieldPlan:
		f.data.PlanID = value
	case FieldShipping:
		f.data.Shipping = value == "true"
	}
	delete(f.errs, field)
}

// Data returns a snapshot of the current field values.
func (f *Form) Data() Data {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// FieldErrors returns a copy of the current validation error set.
func (f *Form) FieldErrors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(Errors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Operator returns the currently selected carrier.
func (f *Form) Operator() Operator {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.operator
}

// SelectOperator switches the carrier and always resets the chosen plan,
// since plans are only valid under the carrier they belong to.
func (f *Form) SelectOperator(op Operator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.operator = op
	f.data.PlanID = ""
}

// Plans returns the plans selectable under the current carrier.
func (f *Form) Plans() []Plan {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.catalog[f.operator]
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// BlurPostalCode runs the address enrichment. Unless the unmasked postal
// code is exactly 8 digits it does nothing and issues no network call.
// Lookup failures (not found or unreachable) are logged and swallowed: the
// previously entered address fields are kept and the user corrects manually.
func (f *Form) BlurPostalCode(ctx context.Context) {
	f.mu.Lock()
	cep := Digits(f.data.PostalCode)
	f.mu.Unlock()
	if len(cep) != cepDigits {
		return
	}

	addr, err := f.address.Lookup(ctx, cep)
	if err != nil {
		applog.LogWarn(ctx, "postal code enrichment skipped", zap.String("cep", cep), zap.Error(err))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Street = addr.Street
	f.data.District = addr.District
	f.data.City = addr.City
	f.data.Region = addr.Region
}

// BlurTaxID runs the identity enrichment. Unless the unmasked CPF is exactly
// 11 digits it does nothing and issues no network call. Name and birth date
// are applied independently: either may come back empty without blocking the
// other. Failures are logged and swallowed.
func (f *Form) BlurTaxID(ctx context.Context) {
	f.mu.Lock()
	cpf := Digits(f.data.TaxID)
	f.mu.Unlock()
	if len(cpf) != cpfDigits {
		return
	}

	person, err := f.taxid.Verify(ctx, cpf)
	if err != nil {
		applog.LogWarn(ctx, "tax id enrichment skipped", zap.Error(err))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if person.Name != "" {
		f.data.Name = person.Name
	}
	if person.BirthDate != "" {
		f.data.BirthDate = person.BirthDate
	}
}

// Submit validates the form and, when clean, posts the unmasked payload to
// the signup service. On success all state is reset (the page-reload
// analogue); on failure values stay intact and the in-flight flag is cleared
// so the user can retry. While a submission is in flight further calls
// return ErrSubmitInFlight without touching anything.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	errs := Validate(f.data)
	if len(errs) > 0 {
		f.errs = errs
		f.mu.Unlock()
		return ErrValidation
	}
	f.errs = Errors{}
	f.submitting = true
	reg := f.payload()
	f.mu.Unlock()

	err := f.signup.Submit(ctx, reg)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		applog.LogError(ctx, "registration submission failed", err)
		return err
	}
	f.data = Data{}
	f.operator = ""
	return nil
}

// payload builds the normalized submission record. Caller holds the lock.
func (f *Form) payload() signup.Registration {
	return signup.Registration{
		TaxID:            Digits(f.data.TaxID),
		BirthDate:        f.data.BirthDate,
		Name:             f.data.Name,
		Email:            f.data.Email,
		Phone:            Digits(f.data.Phone),
		Mobile:           Digits(f.data.Mobile),
		PostalCode:       Digits(f.data.PostalCode),
		District:         f.data.District,
		City:             f.data.City,
		Region:           f.data.Region,
		Street:           f.data.Street,
		Number:           f.data.Number,
		Complement:       f.data.Complement,
		ChipType:         f.data.ChipType,
		Coupon:           f.data.Coupon,
		PlanID:           f.data.PlanID,
		Shipping:         f.data.Shipping,
		RepresentativeID: f.rep.ID,
		Token:            f.token,
	}
}
