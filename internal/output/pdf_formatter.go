package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/firesim/retirement-simulator/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a printable summary report: assumptions, the scenario
// comparison table, and each scenario's verdict. The full ledger stays in the
// CSV and HTML outputs.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.RunSet) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Retirement Simulation Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pdfContentWidth, 8, "Key Assumptions", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		pdf.MultiCell(pdfContentWidth, 5, "- "+a, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, "Scenario Summary", "", 1, "L", false, 0, "")
	writeSummaryTable(pdf, results)
	pdf.Ln(4)

	for i, res := range results.Results {
		writeScenarioPDF(pdf, i+1, &res)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(46, 125, 50)
		pdf.MultiCell(pdfContentWidth, 6, fmt.Sprintf("Recommended: %s (retire at age %d, wealth at death %s)",
			rec.ScenarioName, rec.EarliestAge, FormatCurrency(rec.EndWealth)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummaryTable(pdf *fpdf.Fpdf, results *domain.RunSet) {
	colWidths := []float64{50, 28, 24, 39, 39}
	headers := []string{"Scenario", "Verdict", "Earliest", "End Wealth", "Peak Wealth"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 244, 248)
	pdf.SetTextColor(0, 51, 102)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, sm := range results.Summaries {
		earliest := "-"
		if sm.EarliestAge > 0 {
			earliest = intToString(sm.EarliestAge)
		}
		cells := []string{sm.Name, sm.Kind.String(), earliest, FormatCurrency(sm.EndWealth), FormatCurrency(sm.PeakWealth)}
		aligns := []string{"L", "C", "C", "R", "R"}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 6, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func writeScenarioPDF(pdf *fpdf.Fpdf, index int, res *domain.ScenarioResult) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Scenario %d: %s", index, res.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	for _, line := range VerdictLines(&res.Verdict) {
		pdf.MultiCell(pdfContentWidth, 5, line, "", "L", false)
	}

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Peak wealth %s, wealth at death %s over %d simulated years.",
		FormatCurrency(res.Ledger.PeakWealth()), FormatCurrency(res.Ledger.EndWealth()), len(res.Ledger)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}
