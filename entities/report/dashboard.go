package report

import (
	"context"
	"fmt"
	"time"

	"gestaobikes/database"
	"gestaobikes/schemas"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Dashboard struct {
	Period              Period          `json:"period"`
	Stages              StageSummary    `json:"stages"`
	LeadsByDay          []DayCount      `json:"leads_by_day"`
	Sales               SalesSummary    `json:"sales"`
	SalesConversionRate decimal.Decimal `json:"sales_conversion_rate"`
	SoldBikes           int             `json:"sold_bikes"`
}

// Snapshot is the set of rows one dashboard is computed from.
type Snapshot struct {
	Contacts  []schemas.Contact
	Sales     []schemas.Sale
	SoldBikes []schemas.Bike
}

// BuildDashboard is a pure reduction over snap; the same inputs always give
// the same dashboard.
func BuildDashboard(snap Snapshot, period Period, now time.Time, loc *time.Location) Dashboard {
	contacts := ContactsInPeriod(snap.Contacts, period, loc)
	stages := SummarizeStages(contacts)
	sales := SummarizeSales(SalesInRange(snap.Sales, RangeOf(period), loc))

	return Dashboard{
		Period:              period,
		Stages:              stages,
		LeadsByDay:          LeadsByDay(snap.Contacts, now, loc),
		Sales:               sales,
		SalesConversionRate: SalesConversionRate(sales.Total, stages.Count(schemas.StageQualified)),
		SoldBikes:           len(snap.SoldBikes),
	}
}

type Handler struct {
	Contacts database.Table[schemas.Contact]
	Sales    database.Table[schemas.Sale]
	Bikes    database.Table[schemas.Bike]
	Logger   *zap.Logger
	Location *time.Location
	Now      func() time.Time
}

func (h *Handler) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	contacts, err := h.Contacts.Select(ctx, database.Query{})
	if err != nil {
		return Snapshot{}, fmt.Errorf("load contacts: %w", err)
	}

	sales, err := h.Sales.Select(ctx, database.Query{})
	if err != nil {
		return Snapshot{}, fmt.Errorf("load sales: %w", err)
	}

	sold, err := h.Bikes.Select(ctx, database.Query{
		Filter: []database.Field{database.F(schemas.BIKE_FIELD_STATUS, schemas.BIKE_STATUS_SOLD)},
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("load sold bikes: %w", err)
	}

	return Snapshot{Contacts: contacts, Sales: sales, SoldBikes: sold}, nil
}

// Dashboard loads a fresh snapshot and reduces it for the given period.
func (h *Handler) Dashboard(ctx context.Context, mode string, ref time.Time) (Dashboard, error) {
	period, err := PeriodBounds(mode, ref, h.Location)
	if err != nil {
		return Dashboard{}, err
	}

	snap, err := h.LoadSnapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return BuildDashboard(snap, period, h.Now(), h.Location), nil
}
