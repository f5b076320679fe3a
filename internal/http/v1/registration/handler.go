package registration

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/clubechip/signup-api/internal/form"
	addresssvc "github.com/clubechip/signup-api/internal/service/address"
	signupsvc "github.com/clubechip/signup-api/internal/service/signup"
	taxidsvc "github.com/clubechip/signup-api/internal/service/taxid"
)

// Register wires the registration workflow routes into the provided API
// router. token is the anti-forgery token attached to every upstream
// submission.
func Register(
	api huma.API,
	addressSvc addresssvc.Service,
	taxidSvc taxidsvc.Service,
	signupSvc signupsvc.Service,
	token string,
) {
	huma.Register(api, huma.Operation{
		OperationID: "get-address",
		Method:      http.MethodGet,
		Path:        "/address/{cep}",
		Summary:     "Resolve a postal code to an address",
		Description: "Looks up street, district, city and region for an 8-digit CEP. Backs the form's postal-code blur enrichment.",
		Tags:        []string{"Registration"},
	}, func(ctx context.Context, input *AddressGetInput) (*AddressGetOutput, error) {
		addr, err := addressSvc.Lookup(ctx, input.Cep)
		if err != nil {
			return nil, mapAddressError(err)
		}
		return &AddressGetOutput{Body: Address{
			Street:   addr.Street,
			District: addr.District,
			City:     addr.City,
			Region:   addr.Region,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "lookup-tax-id",
		Method:      http.MethodPost,
		Path:        "/tax-id/lookup",
		Summary:     "Resolve a CPF to name and birth date",
		Description: "Backs the form's tax-ID blur enrichment. Either field may come back empty.",
		Tags:        []string{"Registration"},
	}, func(ctx context.Context, input *TaxIDLookupInput) (*TaxIDLookupOutput, error) {
		person, err := taxidSvc.Verify(ctx, input.Body.CPF)
		if err != nil {
			return nil, mapTaxIDError(err)
		}
		return &TaxIDLookupOutput{Body: Person{
			Name:      person.Name,
			BirthDate: person.BirthDate,
		}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "submit-registration",
		Method:        http.MethodPost,
		Path:          "/registrations",
		Summary:       "Submit a registration",
		Description:   "Validates the form payload, normalizes the masked fields and forwards the registration upstream.",
		Tags:          []string{"Registration"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
		data := dataFromInput(input)
		if errs := form.Validate(data); len(errs) > 0 {
			return nil, validationError(errs)
		}

		reg := signupsvc.Registration{
			TaxID:            form.Digits(data.TaxID),
			BirthDate:        data.BirthDate,
			Name:             data.Name,
			Email:            data.Email,
			Phone:            form.Digits(data.Phone),
			Mobile:           form.Digits(data.Mobile),
			PostalCode:       form.Digits(data.PostalCode),
			District:         data.District,
			City:             data.City,
			Region:           data.Region,
			Street:           data.Street,
			Number:           data.Number,
			Complement:       data.Complement,
			ChipType:         data.ChipType,
			Coupon:           data.Coupon,
			PlanID:           data.PlanID,
			Shipping:         data.Shipping,
			RepresentativeID: input.Body.RepresentativeID,
			Token:            token,
		}
		if err := signupSvc.Submit(ctx, reg); err != nil {
			return nil, huma.Error502BadGateway("registration could not be completed")
		}
		return &SubmitOutput{Body: SubmitResult{Status: "created"}}, nil
	})
}

func dataFromInput(input *SubmitInput) form.Data {
	return form.Data{
		TaxID:      input.Body.CPF,
		BirthDate:  input.Body.BirthDate,
		Name:       input.Body.Name,
		Email:      input.Body.Email,
		Phone:      input.Body.Phone,
		Mobile:     input.Body.Mobile,
		PostalCode: input.Body.PostalCode,
		District:   input.Body.District,
		City:       input.Body.City,
		Region:     input.Body.Region,
		Street:     input.Body.Street,
		Number:     input.Body.Number,
		Complement: input.Body.Complement,
		ChipType:   input.Body.ChipType,
		Coupon:     input.Body.Coupon,
		PlanID:     input.Body.PlanID,
		Shipping:   input.Body.Shipping,
	}
}

// validationError renders the complete error set as a 422 with one detail
// per failing field, sorted for stable output.
func validationError(errs form.Errors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)

	details := make([]error, 0, len(fields))
	for _, f := range fields {
		details = append(details, &huma.ErrorDetail{
			Location: "body." + f,
			Message:  errs[form.Field(f)],
		})
	}
	return huma.Error422UnprocessableEntity("validation failed", details...)
}

func mapAddressError(err error) error {
	switch {
	case errors.Is(err, addresssvc.ErrNotFound):
		return huma.Error404NotFound("postal code not found")
	default:
		return huma.Error502BadGateway("address lookup unavailable")
	}
}

func mapTaxIDError(_ error) error {
	// A rejected credential is an operator problem, not the caller's; every
	// failure surfaces as an unavailable lookup.
	return huma.Error502BadGateway("tax id verification unavailable")
}
