package contacts

import (
	"net/http"

	"gestaobikes/entities/report"
	"gestaobikes/utils"
)

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.selectNewestFirst(r.Context())
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_CONTACTS_IN_STORE)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", report.BuildBoard(contacts), 0)
}
