package patient

import "testing"

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"known valid", "11144477735", true},
		{"valid with different digits", "52998224725", true},
		{"all zeros", "00000000000", false},
		{"all ones", "11111111111", false},
		{"all nines", "99999999999", false},
		{"check digit mismatch", "12345678900", false},
		{"first check digit wrong", "11144477745", false},
		{"second check digit wrong", "11144477736", false},
		{"too short", "1114447773", false},
		{"too long", "111444777350", false},
		{"empty", "", false},
		{"non-digit characters", "111.444.777", false},
		{"formatted", "111.444.777-35", false},
		{"letters", "abcdefghijk", false},
		{"unicode", "１１１４４４７７７３５", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCPF(tt.input); got != tt.valid {
				t.Errorf("ValidCPF(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}
