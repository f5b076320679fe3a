package registration

// AddressGetInput defines the path parameter for the postal code lookup.
// The code must already be unmasked: exactly eight digits.
type AddressGetInput struct {
	Cep string `path:"cep" doc:"Unmasked 8-digit postal code (CEP)" example:"01001000" pattern:"^[0-9]{8}$"`
}

// TaxIDLookupInput is the request body for the CPF verification lookup.
type TaxIDLookupInput struct {
	Body struct {
		CPF string `json:"cpf" doc:"Unmasked 11-digit CPF" example:"52998224725" pattern:"^[0-9]{11}$"`
	}
}

// SubmitInput is the request body for a registration submission. Masked
// values are accepted for the CPF, phone, cellphone and CEP fields; they are
// normalized to digit strings before the upstream call.
type SubmitInput struct {
	Body struct {
		CPF              string `json:"cpf"               doc:"Taxpayer ID, masked or unmasked"    example:"529.982.247-25"`
		BirthDate        string `json:"birth_date"        doc:"Birth date"                          example:"1990-04-12"`
		Name             string `json:"name"              doc:"Full name"                           example:"Maria da Silva"`
		Email            string `json:"email"             doc:"Contact e-mail"                      example:"maria@example.com"`
		Phone            string `json:"phone,omitempty"   doc:"Landline, masked or unmasked"        example:"(11) 3322-1100"`
		Mobile           string `json:"cellphone"         doc:"Mobile number, masked or unmasked"   example:"(11) 98877-6655"`
		PostalCode       string `json:"cep"               doc:"Postal code, masked or unmasked"     example:"01001-000"`
		District         string `json:"district,omitempty"   doc:"District (bairro)"                example:"Sé"`
		City             string `json:"city,omitempty"       doc:"City"                             example:"São Paulo"`
		Region           string `json:"state,omitempty"      doc:"Region code (UF)"                 example:"SP"`
		Street           string `json:"street,omitempty"     doc:"Street"                           example:"Praça da Sé"`
		Number           string `json:"number,omitempty"     doc:"Street number"                    example:"100"`
		Complement       string `json:"complement,omitempty" doc:"Address complement"`
		ChipType         string `json:"chip_type,omitempty"  doc:"Chip fulfillment"                 example:"physical"`
		Coupon           string `json:"coupon,omitempty"     doc:"Coupon code"`
		PlanID           string `json:"plan_id"              doc:"Selected plan identifier"         example:"vivo-15"`
		Shipping         bool   `json:"delivery,omitempty"   doc:"Whether the chip is shipped"`
		RepresentativeID string `json:"representative_id"    doc:"Referring representative"         example:"rep-042" minLength:"1"`
	}
}
