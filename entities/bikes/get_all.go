package bikes

import (
	"net/http"

	"gestaobikes/database"
	"gestaobikes/locale"
	"gestaobikes/schemas"
	"gestaobikes/utils"
)

// GetAll lists bikes by model. ?status=disponivel matches loosely, any other
// value except "all" must equal the status exactly.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	query := database.Query{
		Order: &database.Order{Field: schemas.BIKE_FIELD_MODEL},
	}
	if status != "" && status != STATUS_FILTER_ALL && status != STATUS_FILTER_AVAILABLE {
		query.Filter = []database.Field{database.F(schemas.BIKE_FIELD_STATUS, status)}
	}

	bikes, err := h.Bikes.Select(r.Context(), query)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_BIKES_IN_STORE)
		return
	}

	if status == STATUS_FILTER_AVAILABLE {
		available := []schemas.Bike{}
		for _, b := range bikes {
			if locale.IsAvailableStatus(b.Status) {
				available = append(available, b)
			}
		}
		bikes = available
	}

	utils.SendResponse(w, http.StatusOK, "", bikes, 0)
}
