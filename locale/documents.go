package locale

import (
	"strings"
)

// DigitsOnly drops every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone renders 10-digit numbers as (DD) DDDD-DDDD and 11-digit numbers
// as (DD) DDDDD-DDDD. Any other input is returned unchanged.
func FormatPhone(phone string) string {
	digits := DigitsOnly(phone)
	switch len(digits) {
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
	return phone
}

// FormatCPF punctuates an 11-digit CPF as 000.000.000-00.
func FormatCPF(cpf string) string {
	digits := DigitsOnly(cpf)
	if len(digits) != 11 {
		return cpf
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}
