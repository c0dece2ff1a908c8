package contacts

import (
	"encoding/json"
	"net/http"

	"gestaobikes/database"
	"gestaobikes/schemas"
	"gestaobikes/utils"

	"go.uber.org/zap"
)

type stageInput struct {
	Stage string `json:"stage"`
}

// UpdateOneStage moves a contact to another board column.
func (h *Handler) UpdateOneStage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	input := stageInput{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, utils.INVALID_REQUEST_BODY, nil, 0)
		return
	}

	stage, ok := schemas.ParseStage(input.Stage)
	if !ok {
		utils.SendResponse(w, http.StatusBadRequest, "Estágio inválido", nil, 0)
		return
	}

	ctx := r.Context()
	contact, found, err := database.SelectOne[schemas.Contact](ctx, h.Contacts, database.ByID(id)...)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_CONTACT_BY_ID_IN_STORE)
		return
	}
	if !found {
		utils.SendResponse(w, http.StatusNotFound, CONTACT_NOT_FOUND, nil, 0)
		return
	}

	if contact.Stage == stage {
		utils.SendResponse(w, http.StatusOK, "", contact, 0)
		return
	}

	matched, err := h.Contacts.Update(ctx, database.ByID(id), []database.Field{
		database.F(schemas.CONTACT_FIELD_STAGE, string(stage)),
	})
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_UPDATE_CONTACT_IN_STORE)
		return
	}
	if matched == 0 {
		utils.SendResponse(w, http.StatusNotFound, CONTACT_NOT_FOUND, nil, 0)
		return
	}

	if _, err := h.recordStageChange(ctx, id, contact.Stage, stage); err != nil {
		// the move is already saved, history is best effort
		h.logger(r).Error("failed to record stage change",
			zap.Error(err),
			zap.Int("internal_code", utils.CANNOT_INSERT_STAGE_CHANGE_TO_STORE),
		)
	}

	contact.Stage = stage
	utils.SendResponse(w, http.StatusOK, "Estágio atualizado", contact, 0)
}
