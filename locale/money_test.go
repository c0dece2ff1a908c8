package locale

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"8.500,00", "8500"},
		{"2.000,00", "2000"},
		{"R$ 1.234,56", "1234.56"},
		{"8500,5", "8500.5"},
		{"-150,00", "-150"},
		{"", "0"},
		{"abc", "0"},
		{"1,2,3", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseAmount(tt.in)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, "8500,00", NormalizeAmount("R$ 8.500,00"))
	assert.Equal(t, "1200", NormalizeAmount("1.200"))
	assert.Equal(t, "", NormalizeAmount("a combinar"))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain integer", "5000", "R$ 5.000,00"},
		{"plain decimal", "1234567.891", "R$ 1.234.567,89"},
		{"small", "9.5", "R$ 9,50"},
		{"decimal comma", "8.500,00", "R$ 8.500,00"},
		{"already symbol", "R$ 7.999,90", "R$ 7.999,90"},
		{"empty", "", PRICE_ON_REQUEST},
		{"not a number", "a combinar", "a combinar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.in))
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 10.500,00", FormatBRL(decimal.NewFromInt(10500)))
	assert.Equal(t, "-R$ 5,25", FormatBRL(decimal.RequireFromString("-5.25")))
	assert.Equal(t, "R$ 100.000,00", FormatBRL(decimal.NewFromInt(100000)))
}
