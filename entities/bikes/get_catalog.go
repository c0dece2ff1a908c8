package bikes

import (
	"encoding/json"
	"net/http"

	"gestaobikes/database"
	"gestaobikes/locale"
	"gestaobikes/schemas"
	"gestaobikes/utils"

	"go.uber.org/zap"
)

// ToCatalog keeps available bikes and shapes them for the public page.
func ToCatalog(bikes []schemas.Bike) []schemas.CatalogBike {
	catalog := []schemas.CatalogBike{}
	for _, b := range bikes {
		if !locale.IsAvailableStatus(b.Status) {
			continue
		}

		photos := []string{}
		for _, p := range []string{b.Photo1, b.Photo2, b.Photo3} {
			if p != "" {
				photos = append(photos, p)
			}
		}

		catalog = append(catalog, schemas.CatalogBike{
			ID:              b.ID,
			Model:           b.Model,
			Price:           locale.FormatCurrency(b.Price),
			Range:           b.Range,
			LoadCapacity:    b.LoadCapacity,
			Battery:         b.Battery,
			LicenseRequired: b.LicenseRequired,
			Notes:           b.Notes,
			Photos:          photos,
			Video:           b.Video,
		})
	}
	return catalog
}

// GetCatalog serves the public catalog, from the cache when possible.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger(r)

	cached, hit, err := h.Cache.Get(ctx, CATALOG_CACHE_KEY)
	if err != nil {
		logger.Warn("catalog cache read failed", zap.Error(err))
	}
	if hit {
		utils.SendResponse(w, http.StatusOK, "", json.RawMessage(cached), 0)
		return
	}

	bikes, err := h.Bikes.Select(ctx, database.Query{
		Order: &database.Order{Field: schemas.BIKE_FIELD_MODEL},
	})
	if err != nil {
		utils.SendStoreError(w, logger, err, utils.CANNOT_FIND_BIKES_IN_STORE)
		return
	}

	encoded, err := json.Marshal(ToCatalog(bikes))
	if err != nil {
		logger.Error("failed to encode catalog", zap.Error(err))
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_ENCODE_CATALOG)
		return
	}

	if err := h.Cache.Set(ctx, CATALOG_CACHE_KEY, encoded, h.CacheTTL); err != nil {
		logger.Warn("catalog cache write failed", zap.Error(err))
	}

	utils.SendResponse(w, http.StatusOK, "", json.RawMessage(encoded), 0)
}
