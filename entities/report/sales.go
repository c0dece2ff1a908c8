package report

import (
	"time"

	"gestaobikes/locale"
	"gestaobikes/schemas"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DateRange bounds sales by calendar day. Either end may be nil; Until covers
// its whole day.
type DateRange struct {
	From  *time.Time
	Until *time.Time
}

func (r DateRange) IsZero() bool {
	return r.From == nil && r.Until == nil
}

func (r DateRange) contains(t time.Time, loc *time.Location) bool {
	if r.From != nil && t.Before(startOfDay(*r.From, loc)) {
		return false
	}
	if r.Until != nil && t.After(endOfDay(*r.Until, loc)) {
		return false
	}
	return true
}

func RangeOf(p Period) DateRange {
	return DateRange{From: &p.Start, Until: &p.End}
}

type SalesSummary struct {
	Total              int             `json:"total"`
	Financed           int             `json:"financed"`
	Revenue            decimal.Decimal `json:"revenue"`
	AverageTicket      decimal.Decimal `json:"average_ticket"`
	FinancedPercentage decimal.Decimal `json:"financed_percentage"`
}

// SalesInRange keeps sales whose data_venda falls in r. With an empty range
// every sale is kept; otherwise sales with unreadable dates are dropped.
func SalesInRange(sales []schemas.Sale, r DateRange, loc *time.Location) []schemas.Sale {
	if r.IsZero() {
		return sales
	}

	out := []schemas.Sale{}
	for _, s := range sales {
		date, ok := locale.ParseDate(s.SaleDate, loc)
		if ok && r.contains(date, loc) {
			out = append(out, s)
		}
	}
	return out
}

// SummarizeSales totals already filtered sales. Unparseable amounts count as
// zero.
func SummarizeSales(sales []schemas.Sale) SalesSummary {
	summary := SalesSummary{
		Total:              len(sales),
		Revenue:            decimal.Zero,
		AverageTicket:      decimal.Zero,
		FinancedPercentage: decimal.Zero,
	}

	for _, s := range sales {
		summary.Revenue = summary.Revenue.Add(locale.ParseAmount(s.FinalAmount))
		if s.Financed {
			summary.Financed++
		}
	}

	if summary.Total > 0 {
		total := decimal.NewFromInt(int64(summary.Total))
		summary.AverageTicket = summary.Revenue.Div(total).Round(2)
		summary.FinancedPercentage = decimal.NewFromInt(int64(summary.Financed)).Mul(hundred).Div(total).Round(2)
	}
	return summary
}

// SalesConversionRate is sales per qualified contact, as a percentage.
func SalesConversionRate(saleCount, qualifiedCount int) decimal.Decimal {
	if qualifiedCount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(saleCount)).Mul(hundred).Div(decimal.NewFromInt(int64(qualifiedCount))).Round(2)
}
