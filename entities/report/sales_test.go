package report

import (
	"testing"
	"time"

	"gestaobikes/schemas"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarizeSales(t *testing.T) {
	loc := saoPaulo(t)
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	until := time.Date(2025, 11, 30, 0, 0, 0, 0, loc)

	sales := []schemas.Sale{
		{FinalAmount: "8.500,00", Financed: true, DownPayment: "1000,00", SaleDate: "10-11-2025"},
		{FinalAmount: "2.000,00", Financed: false, SaleDate: "30-11-2025"},
	}

	summary := SummarizeSales(SalesInRange(sales, DateRange{From: &from, Until: &until}, loc))
	assert.Equal(t, 2, summary.Total)
	assert.True(t, dec("10500").Equal(summary.Revenue), summary.Revenue.String())
	assert.True(t, dec("5250").Equal(summary.AverageTicket), summary.AverageTicket.String())
	assert.True(t, dec("50").Equal(summary.FinancedPercentage), summary.FinancedPercentage.String())
}

func TestSummarizeSalesEmpty(t *testing.T) {
	summary := SummarizeSales(nil)
	assert.Zero(t, summary.Total)
	assert.True(t, summary.Revenue.IsZero())
	assert.True(t, summary.AverageTicket.IsZero())
	assert.True(t, summary.FinancedPercentage.IsZero())
}

func TestSummarizeSalesUnparseableAmount(t *testing.T) {
	summary := SummarizeSales([]schemas.Sale{
		{FinalAmount: "a combinar"},
		{FinalAmount: "R$ 3.000,50"},
		{FinalAmount: "1,2,3"},
	})
	assert.Equal(t, 3, summary.Total)
	assert.True(t, dec("3000.50").Equal(summary.Revenue), summary.Revenue.String())
	assert.True(t, dec("1000.17").Equal(summary.AverageTicket), summary.AverageTicket.String())
}

func TestSalesInRange(t *testing.T) {
	loc := saoPaulo(t)
	sales := []schemas.Sale{
		{ID: "a", SaleDate: "31-10-2025"},
		{ID: "b", SaleDate: "01-11-2025"},
		{ID: "c", SaleDate: "15-11-2025"},
		{ID: "d", SaleDate: "sem data"},
	}

	assert.Len(t, SalesInRange(sales, DateRange{}, loc), 4, "no range keeps everything, even unreadable dates")

	from := time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	got := SalesInRange(sales, DateRange{From: &from}, loc)
	assert.Equal(t, []string{"b", "c"}, saleIDs(got))

	until := time.Date(2025, 11, 1, 0, 0, 0, 0, loc)
	got = SalesInRange(sales, DateRange{Until: &until}, loc)
	assert.Equal(t, []string{"a", "b"}, saleIDs(got), "until covers the whole day")
}

func saleIDs(sales []schemas.Sale) []string {
	ids := []string{}
	for _, s := range sales {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestSalesConversionRate(t *testing.T) {
	assert.True(t, SalesConversionRate(3, 0).IsZero())
	assert.True(t, dec("50").Equal(SalesConversionRate(1, 2)))
	assert.True(t, dec("33.33").Equal(SalesConversionRate(1, 3)))
	assert.True(t, dec("300").Equal(SalesConversionRate(3, 1)))
}
