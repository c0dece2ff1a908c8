package bikes

import (
	"net/http"

	"gestaobikes/database"
	"gestaobikes/schemas"
	"gestaobikes/utils"
)

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	bike, found, err := database.SelectOne[schemas.Bike](r.Context(), h.Bikes, database.ByID(r.PathValue("id"))...)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_BIKE_BY_ID_IN_STORE)
		return
	}
	if !found {
		utils.SendResponse(w, http.StatusNotFound, BIKE_NOT_FOUND, nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", bike, 0)
}
