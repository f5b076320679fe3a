package form

import "strings"

// Maximum digit counts for the masked fields. Extra input is dropped.
const (
	cpfDigits   = 11
	cepDigits   = 8
	phoneDigits = 11
)

// Digits strips every non-digit rune, recovering the unmasked value of any
// masked field.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCPF formats a CPF as 000.000.000-00. Partial input is masked as far
// as it goes, so the mask can be re-applied on every keystroke. Masking an
// already-masked value yields the same value.
func MaskCPF(s string) string {
	d := Digits(s)
	if len(d) > cpfDigits {
		d = d[:cpfDigits]
	}
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// MaskCEP formats a postal code as 00000-000.
func MaskCEP(s string) string {
	d := Digits(s)
	if len(d) > cepDigits {
		d = d[:cepDigits]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// MaskPhone formats a landline or mobile number as (00) 0000-0000 or, when
// an eleventh digit is present, (00) 00000-0000.
func MaskPhone(s string) string {
	d := Digits(s)
	if len(d) > phoneDigits {
		d = d[:phoneDigits]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	}
	rest := d[2:]
	split := 4
	if len(rest) > 8 {
		split = 5
	}
	if len(rest) <= split {
		return "(" + d[:2] + ") " + rest
	}
	return "(" + d[:2] + ") " + rest[:split] + "-" + rest[split:]
}
