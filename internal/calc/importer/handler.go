// Package importer feeds pump calculations from an uploaded spreadsheet,
// one operating point per row.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Thermex/internal/calc/pump"
	"Thermex/internal/steam"
	"Thermex/internal/units"

	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Props steam.Properties
}

type PumpImportResult struct {
	Count   int           `json:"count"`
	Results []pump.Result `json:"results"`
}

func (h *Handler) Pump(w http.ResponseWriter, r *http.Request) {
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

	var results []pump.Result
	for i := 1; i < len(rows); i++ {
		input, err := ParsePumpRow(rows[i])
		if err != nil {
			continue
		}
		res, err := pump.Calculate(h.Props, input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PumpImportResult{Count: len(results), Results: results})
}

// ParsePumpRow reads one spreadsheet row:
// unit_system, volumetric flow, inlet pressure, outlet pressure.
func ParsePumpRow(row []string) (pump.Input, error) {
	if len(row) < 4 {
		return pump.Input{}, fmt.Errorf("bad row")
	}
	system, err := units.Parse(row[0])
	if err != nil {
		return pump.Input{}, err
	}
	flow, err := toFloat(row[1])
	if err != nil {
		return pump.Input{}, err
	}
	pIn, err := toFloat(row[2])
	if err != nil {
		return pump.Input{}, err
	}
	pOut, err := toFloat(row[3])
	if err != nil {
		return pump.Input{}, err
	}
	return pump.Input{
		VolumeFlow:  flow,
		PressureIn:  pIn,
		PressureOut: pOut,
		System:      system,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
