package contacts

import (
	"net/http"

	"gestaobikes/database"
	"gestaobikes/schemas"
	"gestaobikes/utils"
)

func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	contact, found, err := database.SelectOne[schemas.Contact](r.Context(), h.Contacts, database.ByID(r.PathValue("id"))...)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_CONTACT_BY_ID_IN_STORE)
		return
	}
	if !found {
		utils.SendResponse(w, http.StatusNotFound, CONTACT_NOT_FOUND, nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", contact, 0)
}
