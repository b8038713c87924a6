package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"moving-quote-agent/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// Renderer turns a quote result into a downloadable PDF. The layout is a
// simple stacked document: customer section, quote table, analysis text.
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

func (r *Renderer) Render(profile entity.ExtractedProfile, comparison entity.QuoteComparison, analysis string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Moving Quote Analysis Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "MOVING QUOTE ANALYSIS REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+r.now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	r.writeCustomerSection(pdf, profile)
	r.writeQuoteSection(pdf, comparison)
	r.writeAnalysisSection(pdf, analysis)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeCustomerSection(pdf *gofpdf.Fpdf, p entity.ExtractedProfile) {
	sectionHeader(pdf, "CUSTOMER INFORMATION")

	pdf.SetFont("Helvetica", "", 11)
	rows := []struct{ label, value string }{
		{"Name", p.Name},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"From", p.Origin},
		{"To", p.Destination},
		{"Move Date", p.MoveDate},
	}
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "-"
		}
		pdf.CellFormat(35, 7, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *Renderer) writeQuoteSection(pdf *gofpdf.Fpdf, c entity.QuoteComparison) {
	sectionHeader(pdf, "QUOTES RECEIVED")

	if len(c.Options) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 7, "No quotes available.", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 8, "Company", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Total", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Rating", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, opt := range c.Options {
		pdf.CellFormat(70, 7, opt.Company, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("$%.2f %s", opt.Total, opt.Currency), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f", opt.Rating), "", 1, "R", false, 0, "")

		if len(opt.Breakdown) > 0 {
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(90, 90, 90)
			pdf.CellFormat(0, 5, "  "+formatBreakdown(opt.Breakdown), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 10)
		}
	}

	if c.Savings > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, fmt.Sprintf("Best deal: %s. You save $%.2f (%.1f%%) over %s.",
			c.Cheapest, c.Savings, c.SavingsPercent, c.MostExpensive), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *Renderer) writeAnalysisSection(pdf *gofpdf.Fpdf, analysis string) {
	if strings.TrimSpace(analysis) == "" {
		return
	}
	sectionHeader(pdf, "AI ANALYSIS")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5.5, analysis, "", "L", false)
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
}

func formatBreakdown(breakdown map[string]string) string {
	// Stable order keeps re-renders byte-identical for the same input.
	keys := []string{"base_fee", "mileage", "deposit", "insurance"}
	parts := make([]string, 0, len(breakdown))
	for _, k := range keys {
		if v, ok := breakdown[k]; ok {
			parts = append(parts, strings.ReplaceAll(k, "_", " ")+": "+v)
		}
	}
	for k, v := range breakdown {
		if !contains(keys, k) {
			parts = append(parts, strings.ReplaceAll(k, "_", " ")+": "+v)
		}
	}
	return strings.Join(parts, " | ")
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
