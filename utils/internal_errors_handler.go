package utils

import (
	"errors"
	"fmt"
	"net/http"

	"gestaobikes/database"
	"gestaobikes/validation"

	"go.uber.org/zap"
)

const (
	_ = iota
	CANNOT_FIND_CONTACTS_IN_STORE
	CANNOT_FIND_CONTACT_BY_ID_IN_STORE
	CANNOT_INSERT_CONTACT_TO_STORE
	CANNOT_UPDATE_CONTACT_IN_STORE
	CANNOT_INSERT_STAGE_CHANGE_TO_STORE
	CANNOT_FIND_STAGE_CHANGES_IN_STORE
	CANNOT_FIND_BIKES_IN_STORE
	CANNOT_FIND_BIKE_BY_ID_IN_STORE
	CANNOT_INSERT_BIKE_TO_STORE
	CANNOT_UPDATE_BIKE_IN_STORE
	CANNOT_DELETE_BIKE_FROM_STORE
	CANNOT_ENCODE_CATALOG
	CANNOT_FIND_SALES_IN_STORE
	CANNOT_INSERT_SALE_TO_STORE
	CANNOT_BUILD_SALES_SPREADSHEET
	CANNOT_BUILD_DASHBOARD
)

const (
	INVALID_REQUEST_DATA = "Dados inválidos"
	INVALID_REQUEST_BODY = "Corpo da requisição inválido"
)

func SendInternalError(internalErrorCode int) string {
	return fmt.Sprintf("Ocorreu um erro interno no servidor. Por favor, tente novamente mais tarde (Cod: %d)", internalErrorCode)
}

// SendStoreError logs a failed store call and answers 502 when the store
// could not be reached, 500 otherwise.
func SendStoreError(w http.ResponseWriter, logger *zap.Logger, err error, internalErrorCode int) {
	status := http.StatusInternalServerError
	if errors.Is(err, database.ErrUnavailable) {
		status = http.StatusBadGateway
	}
	logger.Error("store call failed",
		zap.Error(err),
		zap.Int("internal_code", internalErrorCode),
		zap.Int("status", status),
	)
	SendResponse(w, status, "", nil, internalErrorCode)
}

// SendValidationError answers 400 with the field-level messages.
func SendValidationError(w http.ResponseWriter, errs validation.Errors) {
	SendResponse(w, http.StatusBadRequest, INVALID_REQUEST_DATA, errs, 0)
}
