package contacts

import (
	"net/http"

	"gestaobikes/database"
	"gestaobikes/schemas"
	"gestaobikes/utils"
)

// GetHistory lists the stage moves of one contact, newest first.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	ctx := r.Context()
	_, found, err := database.SelectOne[schemas.Contact](ctx, h.Contacts, database.ByID(id)...)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_CONTACT_BY_ID_IN_STORE)
		return
	}
	if !found {
		utils.SendResponse(w, http.StatusNotFound, CONTACT_NOT_FOUND, nil, 0)
		return
	}

	changes, err := h.StageChanges.Select(ctx, database.Query{
		Filter: []database.Field{database.F(schemas.STAGE_CHANGE_FIELD_CONTACT_ID, id)},
		Order:  &database.Order{Field: schemas.STAGE_CHANGE_FIELD_CREATED_AT, Descending: true},
	})
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_STAGE_CHANGES_IN_STORE)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", changes, 0)
}
