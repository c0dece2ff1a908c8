package bikes

import (
	"context"
	"net/http"
	"time"

	"gestaobikes/cache"
	"gestaobikes/database"
	"gestaobikes/middlewares"
	"gestaobikes/schemas"

	"go.uber.org/zap"
)

const (
	BIKE_NOT_FOUND = "Bike não encontrada"

	CATALOG_CACHE_KEY = "catalog:available"

	STATUS_FILTER_ALL       = "all"
	STATUS_FILTER_AVAILABLE = "disponivel"
)

type Handler struct {
	Bikes    database.Table[schemas.Bike]
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func (h *Handler) logger(r *http.Request) *zap.Logger {
	return h.Logger.With(
		zap.String("request_id", middlewares.RequestIDFromContext(r.Context())),
		zap.String("bike_id", r.PathValue("id")),
	)
}

// invalidateCatalog drops the cached public catalog after any bike write.
func (h *Handler) invalidateCatalog(ctx context.Context, logger *zap.Logger) {
	if err := h.Cache.Delete(ctx, CATALOG_CACHE_KEY); err != nil {
		logger.Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}

func applyDefaults(b *schemas.Bike) {
	if b.LicenseRequired == "" {
		b.LicenseRequired = schemas.BIKE_LICENSE_NO
	}
	if b.Status == "" {
		b.Status = schemas.BIKE_STATUS_AVAILABLE
	}
}

func editableFields(b schemas.Bike) []database.Field {
	return []database.Field{
		database.F(schemas.BIKE_FIELD_MODEL, b.Model),
		database.F(schemas.BIKE_FIELD_PRICE, b.Price),
		database.F(schemas.BIKE_FIELD_RANGE, b.Range),
		database.F(schemas.BIKE_FIELD_LOAD_CAPACITY, b.LoadCapacity),
		database.F(schemas.BIKE_FIELD_BATTERY, b.Battery),
		database.F(schemas.BIKE_FIELD_LICENSE_REQUIRED, b.LicenseRequired),
		database.F(schemas.BIKE_FIELD_NOTES, b.Notes),
		database.F(schemas.BIKE_FIELD_PHOTO_1, b.Photo1),
		database.F(schemas.BIKE_FIELD_PHOTO_2, b.Photo2),
		database.F(schemas.BIKE_FIELD_PHOTO_3, b.Photo3),
		database.F(schemas.BIKE_FIELD_VIDEO, b.Video),
		database.F(schemas.BIKE_FIELD_STATUS, b.Status),
	}
}
