package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	sizing "github.com/KhiZeus/PlaneProject/internal/calc/sizing"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string       `json:"project"`
	Author  string       `json:"author"`
	Title   string       `json:"title"`
	Notes   string       `json:"notes"`
	Mission sizing.Input `json:"mission"`
}

type Handler struct{}

// Generate solves the mission and renders the weight statement as a PDF.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Conceptual Sizing Report"
	}

	res, err := sizing.Calculate(input.Mission)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Mission")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Category: %s", input.Mission.Category))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Cruise: Mach %.2f at %.0f ft", input.Mission.CruiseMach, input.Mission.CruiseAltFt))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Range: %.0f nmi, loiter %.0f min, TSFC %.2f", input.Mission.RangeNM, input.Mission.LoiterMin, input.Mission.TSFC))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Weight statement")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Takeoff weight: %.0f lbf", res.TakeoffLbf))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Empty weight: %.0f lbf", res.EmptyLbf))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fuel weight: %.0f lbf", res.FuelLbf))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payload weight: %.0f lbf", res.PayloadLbf))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Structure fraction: %.4f", res.StructureFraction))
	pdf.Ln(6)
	if !res.Feasible {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "WARNING: negative fuel weight, mission not flyable.")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
	}
	pdf.Ln(4)
	pdf.MultiCell(0, 6, input.Notes, "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sizing-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
