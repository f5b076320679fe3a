package registration

// AddressGetOutput is the response wrapper for GET /address/{cep}.
type AddressGetOutput struct {
	Body Address
}

// TaxIDLookupOutput is the response wrapper for POST /tax-id/lookup.
type TaxIDLookupOutput struct {
	Body Person
}

// SubmitOutput is the response wrapper for POST /registrations.
type SubmitOutput struct {
	Body SubmitResult
}
