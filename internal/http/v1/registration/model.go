package registration

// Address is the HTTP model for a postal code lookup result.
type Address struct {
	Street   string `json:"street"   doc:"Street (logradouro)" example:"Praça da Sé"`
	District string `json:"district" doc:"District (bairro)"   example:"Sé"`
	City     string `json:"city"     doc:"City"                example:"São Paulo"`
	Region   string `json:"state"    doc:"Region code (UF)"    example:"SP"`
}

// Person is the HTTP model for a CPF verification result. Either field may
// be empty when the registry holds no value.
type Person struct {
	Name      string `json:"name"      doc:"Registered full name" example:"Maria da Silva"`
	BirthDate string `json:"birthDate" doc:"Registered birth date" example:"1990-04-12"`
}

// SubmitResult reports a completed registration.
type SubmitResult struct {
	Status string `json:"status" doc:"Submission outcome" example:"created"`
}
