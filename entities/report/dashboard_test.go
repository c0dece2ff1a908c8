package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestaobikes/database"
	"gestaobikes/schemas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *database.Store) {
	t.Helper()
	loc := saoPaulo(t)
	store := database.NewMemoryStore()
	now := time.Date(2025, 11, 19, 10, 0, 0, 0, loc)

	return &Handler{
		Contacts: store.Contacts,
		Sales:    store.Sales,
		Bikes:    store.Bikes,
		Logger:   zap.NewNop(),
		Location: loc,
		Now:      func() time.Time { return now },
	}, store
}

func seed(t *testing.T, store *database.Store) {
	t.Helper()
	ctx := context.Background()

	contacts := []schemas.Contact{
		{ID: "c1", Stage: schemas.StageQualified, CreatedAt: "19-11-2025"},
		{ID: "c2", Stage: schemas.StageQualified, CreatedAt: "18-11-2025"},
		{ID: "c3", Stage: schemas.StageInitialContact, CreatedAt: "02-11-2025"},
		{ID: "c4", Stage: schemas.StageQuestions, CreatedAt: "01-11-2025"},
		{ID: "c5", Stage: schemas.StageQualified, CreatedAt: "15-10-2025"},
	}
	for i := range contacts {
		require.NoError(t, store.Contacts.Insert(ctx, &contacts[i]))
	}

	sales := []schemas.Sale{
		{ID: "s1", FinalAmount: "8500,00", Financed: true, SaleDate: "10-11-2025"},
		{ID: "s2", FinalAmount: "2000,00", SaleDate: "12-11-2025"},
		{ID: "s3", FinalAmount: "9999,00", SaleDate: "12-10-2025"},
	}
	for i := range sales {
		require.NoError(t, store.Sales.Insert(ctx, &sales[i]))
	}

	bikes := []schemas.Bike{
		{ID: "b1", Model: "Urban", Status: schemas.BIKE_STATUS_SOLD},
		{ID: "b2", Model: "Cargo", Status: "vendida"},
		{ID: "b3", Model: "Mini", Status: schemas.BIKE_STATUS_AVAILABLE},
	}
	for i := range bikes {
		require.NoError(t, store.Bikes.Insert(ctx, &bikes[i]))
	}
}

func TestHandlerDashboard(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store)

	d, err := h.Dashboard(context.Background(), schemas.REPORT_PERIOD_MONTH, h.Now())
	require.NoError(t, err)

	assert.Equal(t, 4, d.Stages.Total)
	assert.Equal(t, 50, d.Stages.QualifiedRate)
	assert.Equal(t, 200, d.Stages.ConversionRate)
	assert.Equal(t, 2, d.Sales.Total)
	assert.True(t, dec("10500").Equal(d.Sales.Revenue))
	assert.True(t, dec("100").Equal(d.SalesConversionRate))
	assert.Equal(t, 1, d.SoldBikes, "sold bikes match the status exactly")
	require.Len(t, d.LeadsByDay, 7)
	assert.Equal(t, 1, d.LeadsByDay[5].Leads)
	assert.Equal(t, 1, d.LeadsByDay[6].Leads)

	again, err := h.Dashboard(context.Background(), schemas.REPORT_PERIOD_MONTH, h.Now())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestBuildDashboardIsPure(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2025, 11, 19, 10, 0, 0, 0, loc)
	period, err := PeriodBounds(schemas.REPORT_PERIOD_YEAR, now, loc)
	require.NoError(t, err)

	snap := Snapshot{
		Contacts: contactsWithStages(schemas.StageQualified, schemas.StageInitialContact),
		Sales:    []schemas.Sale{{FinalAmount: "1.000,00", SaleDate: "01-01-2025"}},
	}

	first := BuildDashboard(snap, period, now, loc)
	second := BuildDashboard(snap, period, now, loc)
	assert.Equal(t, first, second)
	assert.Equal(t, 100, first.Stages.ConversionRate)
	assert.Equal(t, 1, first.Sales.Total)
}

func TestGetDashboard(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store)

	t.Run("year of a given date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard?mode=year&date=2025-06-01", nil)
		rec := httptest.NewRecorder()
		h.GetDashboard(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				Period struct {
					Mode string `json:"mode"`
				} `json:"period"`
				Stages struct {
					Total int `json:"total"`
				} `json:"stages"`
				Sales struct {
					Total   int    `json:"total"`
					Revenue string `json:"revenue"`
				} `json:"sales"`
				SoldBikes int `json:"sold_bikes"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "year", body.Data.Period.Mode)
		assert.Equal(t, 5, body.Data.Stages.Total)
		assert.Equal(t, 3, body.Data.Sales.Total)
		assert.Equal(t, "20499", body.Data.Sales.Revenue)
		assert.Equal(t, 1, body.Data.SoldBikes)
	})

	t.Run("invalid mode", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?mode=week", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard?date=19/11/2025", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
