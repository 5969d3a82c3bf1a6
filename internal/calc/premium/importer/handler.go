package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type MissionImportResult struct {
	Count   int             `json:"count"`
	Results []sizing.Result `json:"results"`
}

// Missions sizes every mission row of an uploaded XLSX sheet. Rows that do
// not parse or do not converge are skipped, matching spreadsheet workflows
// where a few placeholder rows are expected.
func (h *Handler) Missions(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []sizing.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 8 {
			continue
		}
		input, err := parseMissionRow(row)
		if err != nil {
			continue
		}
		res, err := sizing.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MissionImportResult{Count: len(results), Results: results})
}

func parseMissionRow(row []string) (sizing.Input, error) {
	// expected: category, mach, altitude_ft, aspect_ratio, tsfc, loiter_min,
	// payload_lbf, range_nm, fuel_reserve(optional), fuel_trapped(optional)
	if len(row) < 8 {
		return sizing.Input{}, fmt.Errorf("bad row")
	}
	category := row[0]
	mach, err := toFloat(row[1])
	if err != nil {
		return sizing.Input{}, err
	}
	altitude, err := toFloat(row[2])
	if err != nil {
		return sizing.Input{}, err
	}
	aspect, err := toFloat(row[3])
	if err != nil {
		return sizing.Input{}, err
	}
	tsfc, err := toFloat(row[4])
	if err != nil {
		return sizing.Input{}, err
	}
	loiter, err := toFloat(row[5])
	if err != nil {
		return sizing.Input{}, err
	}
	payload, err := toFloat(row[6])
	if err != nil {
		return sizing.Input{}, err
	}
	rangeNM, err := toFloat(row[7])
	if err != nil {
		return sizing.Input{}, err
	}
	reserve := 0.05
	if len(row) > 8 && row[8] != "" {
		reserve, _ = toFloat(row[8])
	}
	trapped := 0.01
	if len(row) > 9 && row[9] != "" {
		trapped, _ = toFloat(row[9])
	}
	return sizing.Input{
		Category:    category,
		CruiseMach:  mach,
		CruiseAltFt: altitude,
		AspectRatio: aspect,
		TSFC:        tsfc,
		LoiterMin:   loiter,
		FuelReserve: reserve,
		FuelTrapped: trapped,
		PayloadLbf:  payload,
		RangeNM:     rangeNM,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
