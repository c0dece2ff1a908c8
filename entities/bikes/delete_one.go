package bikes

import (
	"net/http"

	"gestaobikes/database"
	"gestaobikes/utils"
)

func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	logger := h.logger(r)

	deleted, err := h.Bikes.Delete(r.Context(), database.ByID(r.PathValue("id")))
	if err != nil {
		utils.SendStoreError(w, logger, err, utils.CANNOT_DELETE_BIKE_FROM_STORE)
		return
	}
	if deleted == 0 {
		utils.SendResponse(w, http.StatusNotFound, BIKE_NOT_FOUND, nil, 0)
		return
	}
	h.invalidateCatalog(r.Context(), logger)

	utils.SendResponse(w, http.StatusOK, "Bike excluída com sucesso", nil, 0)
}
