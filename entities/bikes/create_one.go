package bikes

import (
	"encoding/json"
	"net/http"

	"gestaobikes/schemas"
	"gestaobikes/utils"
	"gestaobikes/validation"

	"github.com/google/uuid"
)

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
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

	input.ID = uuid.NewString()

	logger := h.logger(r)
	if err := h.Bikes.Insert(r.Context(), &input); err != nil {
		utils.SendStoreError(w, logger, err, utils.CANNOT_INSERT_BIKE_TO_STORE)
		return
	}
	h.invalidateCatalog(r.Context(), logger)

	utils.SendResponse(w, http.StatusCreated, "Bike cadastrada com sucesso", input, 0)
}
