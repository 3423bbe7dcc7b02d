package ui

import (
	"fmt"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// handleExportScans streams the scan history as an xlsx workbook
func (a *App) handleExportScans(w http.ResponseWriter, r *http.Request) {
	if a.scans == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New(errors.CodeDatabaseError, "scan history is disabled"))
		return
	}

	records, err := a.scans.List(r.Context(), 1000, 0)
	if err != nil {
		log.Printf("[ui] export: list scans failed: %v", err)
		writeError(w, http.StatusInternalServerError, errors.DatabaseError("could not list scans"))
		return
	}

	file, err := buildScanWorkbook(records)
	if err != nil {
		log.Printf("[ui] export: workbook build failed: %v", err)
		writeError(w, http.StatusInternalServerError, errors.New(errors.CodeInternalError, "export failed"))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="ecoscan_history.xlsx"`)
	if err := file.Write(w); err != nil {
		log.Printf("[ui] export: write failed: %v", err)
	}
}

// buildScanWorkbook renders scan records into a single-sheet workbook
func buildScanWorkbook(records []*ports.ScanRecord) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Scans"

	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headers := []string{"Scan ID", "Category", "Score", "Items Audited", "Consensus Rate", "Origin", "Summary"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, record := range records {
		values := []interface{}{
			record.ID.String(),
			record.Category,
			record.Score,
			len(record.Report.Verdicts),
			fmt.Sprintf("%.0f%%", record.Report.ConsensusRate()*100),
			record.Report.Logistics.Origin,
			record.Summary,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}
