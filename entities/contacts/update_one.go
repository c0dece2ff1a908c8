package contacts

import (
	"encoding/json"
	"net/http"

	"gestaobikes/database"
	"gestaobikes/locale"
	"gestaobikes/schemas"
	"gestaobikes/utils"
	"gestaobikes/validation"

	"go.uber.org/zap"
)

// UpdateOne replaces every editable field of a contact.
func (h *Handler) UpdateOne(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	input := schemas.Contact{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, utils.INVALID_REQUEST_BODY, nil, 0)
		return
	}

	validation.SanitizeContact(&input)
	if errs := validation.ValidateContact(input); errs != nil {
		utils.SendValidationError(w, errs)
		return
	}

	ctx := r.Context()
	current, found, err := database.SelectOne[schemas.Contact](ctx, h.Contacts, database.ByID(id)...)
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_CONTACT_BY_ID_IN_STORE)
		return
	}
	if !found {
		utils.SendResponse(w, http.StatusNotFound, CONTACT_NOT_FOUND, nil, 0)
		return
	}

	input.Document = locale.FormatCPF(input.Document)

	// an edit without a stage keeps the contact in its column
	if input.Stage == schemas.StageNone {
		input.Stage = current.Stage
	}

	matched, err := h.Contacts.Update(ctx, database.ByID(id), editableFields(input))
	if err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_UPDATE_CONTACT_IN_STORE)
		return
	}
	if matched == 0 {
		utils.SendResponse(w, http.StatusNotFound, CONTACT_NOT_FOUND, nil, 0)
		return
	}

	if current.Stage != input.Stage {
		if _, err := h.recordStageChange(ctx, id, current.Stage, input.Stage); err != nil {
			// the edit is already saved, history is best effort
			h.logger(r).Error("failed to record stage change",
				zap.Error(err),
				zap.Int("internal_code", utils.CANNOT_INSERT_STAGE_CHANGE_TO_STORE),
			)
		}
	}

	input.ID = current.ID
	input.CreatedAt = current.CreatedAt
	utils.SendResponse(w, http.StatusOK, "Contato atualizado com sucesso", input, 0)
}
