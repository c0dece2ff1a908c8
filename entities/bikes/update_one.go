package bikes

import (
	"encoding/json"
	"net/http"

	"gestaobikes/database"
	"gestaobikes/schemas"
	"gestaobikes/utils"
	"gestaobikes/validation"
)

// UpdateOne replaces every editable field of a bike. A status change to
// "Vendida" is always a manual edit; sales never touch bikes.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	input := schemas.Bike{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, utils.INVALID_REQUEST_BODY, nil, 0)
		return
	}

	validation.SanitizeBike(&input)
	applyDefaults(&input)

	if errs := validation.ValidateBike(input); errs != nil {
		utils.SendValidationError(w, errs)
		return
	}

	logger := h.logger(r)
	matched, err := h.Bikes.Update(r.Context(), database.ByID(id), editableFields(input))
	if err != nil {
		utils.SendStoreError(w, logger, err, utils.CANNOT_UPDATE_BIKE_IN_STORE)
		return
	}
	if matched == 0 {
		utils.SendResponse(w, http.StatusNotFound, BIKE_NOT_FOUND, nil, 0)
		return
	}
	h.invalidateCatalog(r.Context(), logger)

	input.ID = id
	utils.SendResponse(w, http.StatusOK, "Bike atualizada com sucesso", input, 0)
}
