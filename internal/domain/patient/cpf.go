package patient

// ValidCPF reports whether s is a valid CPF (Cadastro de Pessoas Físicas)
// number. The input must be exactly 11 digits with no punctuation. Sequences
// of a single repeated digit pass the check-digit arithmetic but are not
// issued, so they are rejected up front.
func ValidCPF(s string) bool {
	if len(s) != 11 {
		return false
	}

	var digits [11]int
	allSame := true
	for i := 0; i < 11; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allSame = false
		}
	}
	if allSame {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	if digits[9] != checkDigit(sum) {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	return digits[10] == checkDigit(sum)
}

func checkDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
