package sales

import (
	"net/http"
	"time"

	"gestaobikes/database"
	"gestaobikes/entities/report"
	"gestaobikes/middlewares"
	"gestaobikes/schemas"
	"gestaobikes/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Sales    database.Table[schemas.Sale]
	Bikes    database.Table[schemas.Bike]
	Logger   *zap.Logger
	Location *time.Location
	Now      func() time.Time
}

func (h *Handler) logger(r *http.Request) *zap.Logger {
	return h.Logger.With(zap.String("request_id", middlewares.RequestIDFromContext(r.Context())))
}

// dateRange reads the optional ?from= and ?until= calendar dates.
func (h *Handler) dateRange(r *http.Request) (report.DateRange, error) {
	params := r.URL.Query()
	rng := report.DateRange{}

	from, ok, err := utils.ParseQueryDate(params.Get("from"), h.Location)
	if err != nil {
		return rng, err
	}
	if ok {
		rng.From = &from
	}

	until, ok, err := utils.ParseQueryDate(params.Get("until"), h.Location)
	if err != nil {
		return rng, err
	}
	if ok {
		rng.Until = &until
	}
	return rng, nil
}

// selectInRange loads sales newest first and keeps those in rng.
func (h *Handler) selectInRange(r *http.Request, rng report.DateRange) ([]schemas.Sale, error) {
	sales, err := h.Sales.Select(r.Context(), database.Query{
		Order: &database.Order{Field: schemas.SALE_FIELD_CREATED_AT, Descending: true},
	})
	if err != nil {
		return nil, err
	}
	return report.SalesInRange(sales, rng, h.Location), nil
}
