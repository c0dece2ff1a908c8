package report

import (
	"net/http"

	"gestaobikes/schemas"
	"gestaobikes/utils"

	"go.uber.org/zap"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	mode := params.Get("mode")
	if mode == "" {
		mode = schemas.REPORT_PERIOD_MONTH
	}
	if !schemas.ValidPeriodMode(mode) {
		utils.SendResponse(w, http.StatusBadRequest, "Modo de período inválido", nil, 0)
		return
	}

	ref, ok, err := utils.ParseQueryDate(params.Get("date"), h.Location)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
		return
	}
	if !ok {
		ref = h.Now()
	}

	dashboard, err := h.Dashboard(r.Context(), mode, ref)
	if err != nil {
		utils.SendStoreError(w, h.Logger.With(zap.String("mode", mode)), err, utils.CANNOT_BUILD_DASHBOARD)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", dashboard, 0)
}
