package form

import "testing"

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"partial", "529", "529"},
		{"partial past first group", "5299", "529.9"},
		{"full", "52998224725", "529.982.247-25"},
		{"already masked", "529.982.247-25", "529.982.247-25"},
		{"overflow digits dropped", "529982247259999", "529.982.247-25"},
		{"garbage stripped", "5a2b9c9d8e2f2g4h7i2j5", "529.982.247-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskCPF(tt.in); got != tt.want {
				t.Errorf("MaskCPF(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskCPFRoundTrip(t *testing.T) {
	// Masking any 11-digit string and unmasking must return the original.
	inputs := []string{
		"00000000000",
		"12345678901",
		"52998224725",
		"99999999999",
	}
	for _, in := range inputs {
		masked := MaskCPF(in)
		if got := Digits(masked); got != in {
			t.Errorf("Digits(MaskCPF(%q)) = %q, want %q", in, got, in)
		}
		if again := MaskCPF(masked); again != masked {
			t.Errorf("MaskCPF not idempotent: %q -> %q", masked, again)
		}
	}
}

func TestMaskCEP(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"partial", "01001", "01001"},
		{"full", "01001000", "01001-000"},
		{"already masked", "01001-000", "01001-000"},
		{"overflow digits dropped", "010010001234", "01001-000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskCEP(tt.in); got != tt.want {
				t.Errorf("MaskCEP(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"area code only", "11", "(11"},
		{"partial", "11332", "(11) 332"},
		{"landline", "1133221100", "(11) 3322-1100"},
		{"mobile with ninth digit", "11988776655", "(11) 98877-6655"},
		{"already masked landline", "(11) 3322-1100", "(11) 3322-1100"},
		{"already masked mobile", "(11) 98877-6655", "(11) 98877-6655"},
		{"overflow digits dropped", "119887766554433", "(11) 98877-6655"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskPhone(tt.in); got != tt.want {
				t.Errorf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDigits(t *testing.T) {
	if got := Digits("(11) 98877-6655"); got != "11988776655" {
		t.Errorf("Digits = %q, want 11988776655", got)
	}
	if got := Digits("abc"); got != "" {
		t.Errorf("Digits(abc) = %q, want empty", got)
	}
}
