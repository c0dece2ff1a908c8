package contacts

import (
	"encoding/json"
	"net/http"

	"gestaobikes/locale"
	"gestaobikes/schemas"
	"gestaobikes/utils"
	"gestaobikes/validation"

	"github.com/google/uuid"
)

func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	input := schemas.Contact{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, utils.INVALID_REQUEST_BODY, nil, 0)
		return
	}

	validation.SanitizeContact(&input)
	if input.Stage == schemas.StageNone {
		input.Stage = schemas.StageInitialContact
	}

	if errs := validation.ValidateContact(input); errs != nil {
		utils.SendValidationError(w, errs)
		return
	}

	input.Document = locale.FormatCPF(input.Document)
	input.ID = uuid.NewString()
	input.CreatedAt = locale.StoreDate(h.Now().In(h.Location))

	if err := h.Contacts.Insert(r.Context(), &input); err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_INSERT_CONTACT_TO_STORE)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "Contato criado com sucesso", input, 0)
}
