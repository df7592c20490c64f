package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"project-explorer/engine"
)

// PDF renders a one-page summary report for the current filtered view:
// the key-metric panel values followed by the funding-by-category table.
func PDF(title string, m engine.Metrics, funding engine.BarSpec, generated string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated "+generated, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Key Metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	metricRow(pdf, "Total Projects", fmt.Sprintf("%d (%+d from total)", m.Count, m.Delta))
	metricRow(pdf, "Categories", fmt.Sprintf("%d", m.DistinctCategories))
	metricRow(pdf, "Avg Launch Year", m.AvgLabel)
	metricRow(pdf, "Total Funding", m.FundingLabel)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, "Funding by Category", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 238, 245)
	pdf.CellFormat(90, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 8, "Total Funding", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for i, label := range funding.Labels {
		pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, fmt.Sprintf("$%.0f", funding.Values[i]), "1", 1, "R", false, 0, "")
	}
	if len(funding.Labels) == 0 {
		pdf.CellFormat(150, 7, "no data", "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func metricRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
