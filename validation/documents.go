package validation

import (
	"gestaobikes/locale"
)

// IsValidCPF checks the two check digits of an 11-digit CPF. Punctuation is
// ignored; sequences of one repeated digit are rejected.
func IsValidCPF(cpf string) bool {
	digits := locale.DigitsOnly(cpf)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	d := make([]int, 11)
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}

	return checkDigit(d[:9], 10) == d[9] && checkDigit(d[:10], 11) == d[10]
}

// checkDigit weights digits from firstWeight down to 2.
func checkDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, digit := range digits {
		sum += digit * (firstWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	return rest
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsValidPhone accepts landlines (10 digits) and mobiles (11 digits).
func IsValidPhone(phone string) bool {
	n := len(locale.DigitsOnly(phone))
	return n == 10 || n == 11
}
