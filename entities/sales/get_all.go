package sales

import (
	"net/http"

	"gestaobikes/utils"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	rng, err := h.dateRange(r)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
		return
	}

	sales, err := h.selectInRange(r, rng)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_SALES_IN_STORE)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", sales, 0)
}
