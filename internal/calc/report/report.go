// Package report renders a calculation as a downloadable document: a PDF
// summary sheet or an XLSX workbook. The shell sends the quantities it
// wants printed together with the unit-label map the calculation returned.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

type Input struct {
	Device  string             `json:"device"`
	Project string             `json:"project"`
	Author  string             `json:"author"`
	Title   string             `json:"title"`
	Notes   string             `json:"notes"`
	Inputs  map[string]float64 `json:"inputs"`
	Results map[string]float64 `json:"results"`
	Units   map[string]string  `json:"units"`
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildPDF lays out the one-page calculation summary.
func BuildPDF(in Input) *gofpdf.Fpdf {
	if in.Title == "" {
		in.Title = "Thermodynamics Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Device: %s", in.Device))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(name string, values map[string]float64) {
		if len(values) == 0 {
			return
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, name)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, k := range sortedKeys(values) {
			line := fmt.Sprintf("%s: %.4f", k, values[k])
			if unit, ok := in.Units[k]; ok && unit != "" {
				line += " " + unit
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}
	section("Inputs", in.Inputs)
	section("Results", in.Results)

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	return pdf
}

// BuildWorkbook writes the same summary as a spreadsheet, one quantity
// per row.
func BuildWorkbook(in Input) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Quantity", "Value", "Unit"}); err != nil {
		return nil, err
	}
	row := 2
	writeAll := func(values map[string]float64) error {
		for _, k := range sortedKeys(values) {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &[]any{k, values[k], in.Units[k]}); err != nil {
				return err
			}
			row++
		}
		return nil
	}
	if err := writeAll(in.Inputs); err != nil {
		return nil, err
	}
	if err := writeAll(in.Results); err != nil {
		return nil, err
	}
	return f, nil
}
