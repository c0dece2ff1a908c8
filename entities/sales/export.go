package sales

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"gestaobikes/entities/report"
	"gestaobikes/locale"
	"gestaobikes/schemas"
	"gestaobikes/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const XLSX_CONTENT_TYPE = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const LEDGER_SHEET = "Vendas"

var ledgerHeaders = []string{
	"Data", "Cliente", "Telefone", "Bike", "Financiado", "Entrada", "Valor final",
}

// BuildLedger writes one row per sale followed by a totals block.
func BuildLedger(sales []schemas.Sale, loc *time.Location) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", LEDGER_SHEET); err != nil {
		f.Close()
		return nil, err
	}
	sheet := LEDGER_SHEET

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, h := range ledgerHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, s := range sales {
		row := i + 2
		financed := "Não"
		downPayment := ""
		if s.Financed {
			financed = "Sim"
			downPayment = locale.FormatBRL(locale.ParseAmount(s.DownPayment))
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), locale.FormatDate(s.SaleDate, loc))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.CustomerName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), locale.FormatPhone(s.CustomerPhone))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.BikeModel)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), financed)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), downPayment)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), locale.FormatBRL(locale.ParseAmount(s.FinalAmount)))
	}

	summary := report.SummarizeSales(sales)
	totalsStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	first := len(sales) + 3
	totals := [][2]string{
		{"Total de vendas", fmt.Sprintf("%d", summary.Total)},
		{"Faturamento", locale.FormatBRL(summary.Revenue)},
		{"Ticket médio", locale.FormatBRL(summary.AverageTicket)},
		{"Financiadas (%)", summary.FinancedPercentage.StringFixed(2) + "%"},
	}
	for i, t := range totals {
		row := first + i
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), t[0])
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), t[1])
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), totalsStyle)
	}

	colWidths := []float64{12, 28, 18, 24, 12, 16, 16}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	return f, nil
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rng, err := h.dateRange(r)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, err.Error(), nil, 0)
		return
	}

	logger := h.logger(r)
	sales, err := h.selectInRange(r, rng)
	if err != nil {
		utils.SendStoreError(w, logger, err, utils.CANNOT_FIND_SALES_IN_STORE)
		return
	}

	f, err := BuildLedger(sales, h.Location)
	if err != nil {
		logger.Error("failed to build sales spreadsheet", zap.Error(err))
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_BUILD_SALES_SPREADSHEET)
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		logger.Error("failed to write sales spreadsheet", zap.Error(err))
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_BUILD_SALES_SPREADSHEET)
		return
	}

	filename := fmt.Sprintf("vendas_%s.xlsx", h.Now().In(h.Location).Format("2006-01-02"))
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	utils.SendBytes(w, http.StatusOK, XLSX_CONTENT_TYPE, buf.Bytes())
}
