package form

import "strings"

// Field identifies a form field. The values double as the JSON field names
// of the submission payload.
type Field string

const (
	FieldTaxID      Field = "cpf"
	FieldBirthDate  Field = "birth_date"
	FieldName       Field = "name"
	FieldEmail      Field = "email"
	FieldPhone      Field = "phone"
	FieldMobile     Field = "cellphone"
	FieldPostalCode Field = "cep"
	FieldDistrict   Field = "district"
	FieldCity       Field = "city"
	FieldRegion     Field = "state"
	FieldStreet     Field = "street"
	FieldNumber     Field = "number"
	FieldComplement Field = "complement"
	FieldChipType   Field = "chip_type"
	FieldCoupon     Field = "coupon"
	FieldPlan       Field = "plan_id"
	FieldShipping   Field = "delivery"
)

// Errors maps a field to its user-facing validation message.
type Errors map[Field]string

// Validate checks the required fields and returns the complete error set in
// one pass. It never short-circuits: every failing field gets its message.
// All fields not listed here are optional.
func Validate(d Data) Errors {
	errs := Errors{}
	if len(Digits(d.TaxID)) != cpfDigits {
		errs[FieldTaxID] = "Informe um CPF válido"
	}
	if d.BirthDate == "" {
		errs[FieldBirthDate] = "Informe a data de nascimento"
	}
	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = "Informe o nome completo"
	}
	if !strings.Contains(d.Email, "@") {
		errs[FieldEmail] = "Informe um e-mail válido"
	}
	if len(Digits(d.Mobile)) < 10 {
		errs[FieldMobile] = "Informe um celular válido"
	}
	if len(Digits(d.PostalCode)) != cepDigits {
		errs[FieldPostalCode] = "Informe um CEP válido"
	}
	if d.PlanID == "" {
		errs[FieldPlan] = "Selecione um plano"
	}
	return errs
}
