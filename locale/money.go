package locale

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PRICE_ON_REQUEST is shown instead of a price when a bike has none.
const PRICE_ON_REQUEST = "Consultar"

// ParseAmount reads a pt-BR amount such as "R$ 8.500,00" or "8500,00". Only
// digits, the decimal comma and a leading minus sign are considered; anything
// that still fails to parse is worth zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ',':
			b.WriteRune('.')
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	amount, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// NormalizeAmount strips currency symbols, spaces and thousands separators,
// keeping the decimal comma: "R$ 8.500,00" becomes "8500,00".
func NormalizeAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCurrency renders a stored price for display. Values that already
// carry the currency symbol are kept, decimal-comma values get the symbol
// prepended, plain numbers are formatted as BRL, anything else is echoed.
func FormatCurrency(value string) string {
	if value == "" {
		return PRICE_ON_REQUEST
	}

	if strings.Contains(value, "R$") {
		return value
	}
	if strings.Contains(value, ",") {
		return "R$ " + value
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return FormatBRL(amount)
}

// FormatBRL formats amount with two fractional digits, dot grouping and a
// decimal comma, e.g. "R$ 5.000,00".
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if amount.IsNegative() && !amount.Round(2).IsZero() {
		out = "-" + out
	}
	return out
}
