package sales

import (
	"encoding/json"
	"net/http"
	"time"

	"gestaobikes/database"
	"gestaobikes/locale"
	"gestaobikes/schemas"
	"gestaobikes/utils"
	"gestaobikes/validation"

	"github.com/google/uuid"
)

// CreateOne records a sale. The referenced bike must exist; its status is
// left as it is.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	input := schemas.Sale{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, utils.INVALID_REQUEST_BODY, nil, 0)
		return
	}

	validation.SanitizeSale(&input)

	ctx := r.Context()
	bikeChecked, bikeFound := false, false
	if _, err := uuid.Parse(input.BikeID); err == nil {
		bike, found, err := database.SelectOne[schemas.Bike](ctx, h.Bikes, database.ByID(input.BikeID)...)
		if err != nil {
			utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_FIND_BIKE_BY_ID_IN_STORE)
			return
		}
		bikeChecked, bikeFound = true, found
		if found && input.BikeModel == "" {
			input.BikeModel = bike.Model
		}
	}

	errs := validation.ValidateSale(input)
	if bikeChecked && !bikeFound {
		errs = append(errs, schemas.FieldError{Field: schemas.SALE_FIELD_BIKE_ID, Message: "Bike não encontrada"})
	}
	if len(errs) > 0 {
		utils.SendValidationError(w, errs)
		return
	}

	now := h.Now()
	input.ID = uuid.NewString()
	input.FinalAmount = locale.NormalizeAmount(input.FinalAmount)
	if input.Financed {
		input.DownPayment = locale.NormalizeAmount(input.DownPayment)
	} else {
		input.DownPayment = ""
	}
	if input.SaleDate == "" {
		input.SaleDate = locale.StoreDate(now.In(h.Location))
	}
	input.CreatedAt = now.UTC().Truncate(time.Millisecond)

	if err := h.Sales.Insert(ctx, &input); err != nil {
		utils.SendStoreError(w, h.logger(r), err, utils.CANNOT_INSERT_SALE_TO_STORE)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "Venda registrada com sucesso", input, 0)
}
