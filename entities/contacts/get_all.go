package contacts

import (
	"net/http"

	"gestaobikes/utils"
)

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.selectNewestFirst(r.Context())
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_CONTACTS_IN_STORE)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", contacts, 0)
}
