// Package quote renders customer-facing quote documents from computed
// estimate values. Renderers are pure: they consume already-rounded numbers
// and never feed anything back into the pricing engine.
package quote

import (
	"fmt"
	"strings"

	"github.com/coastalgraphics/estimator/internal/pricing"
)

// Line is one customer-visible row of the quote. Totals are line prices; cost
// and margin never appear on a customer document.
type Line struct {
	Item       string
	Notes      string
	Qty        float64
	Sides      float64
	Dimensions string
	SqFt       float64
	Total      float64
}

// Document is the deterministic input for quote rendering.
type Document struct {
	CompanyName string
	QuoteNumber string
	Date        string
	ClientName  string
	Company     string
	Email       string
	Phone       string
	ProjectName string
	Notes       string
	ValidDays   int
	Lines       []Line
	PrintTotal  float64
	LaborTotal  float64
	DesignTotal float64
	GrandTotal  float64
}

// Text renders the quote as plain text, suitable for pasting into an email.
func Text(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", doc.CompanyName)
	fmt.Fprintf(&b, "Quote")
	if doc.QuoteNumber != "" {
		fmt.Fprintf(&b, " #%s", doc.QuoteNumber)
	}
	fmt.Fprintf(&b, "\nDate: %s\n", doc.Date)

	prepared := preparedForLines(doc)
	if len(prepared) > 0 {
		b.WriteString("\nPrepared for:\n")
		for _, line := range prepared {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	b.WriteString("\nLine items:\n")
	for _, line := range doc.Lines {
		fmt.Fprintf(&b, "  %s", line.Item)
		if line.Notes != "" {
			fmt.Fprintf(&b, " — %s", line.Notes)
		}
		fmt.Fprintf(&b, " | %s x%d side | %s | %s sqft | %s\n",
			formatCount(line.Qty), int(line.Sides), line.Dimensions,
			formatCount(line.SqFt), pricing.Money(line.Total))
	}

	b.WriteString("\nTotals:\n")
	fmt.Fprintf(&b, "  Print subtotal: %s\n", pricing.Money(doc.PrintTotal))
	fmt.Fprintf(&b, "  Labor: %s\n", pricing.Money(doc.LaborTotal))
	fmt.Fprintf(&b, "  Design: %s\n", pricing.Money(doc.DesignTotal))
	fmt.Fprintf(&b, "  Total: %s\n", pricing.Money(doc.GrandTotal))

	fmt.Fprintf(&b, "\nValid for %d days.\n", doc.ValidDays)

	if strings.TrimSpace(doc.Notes) != "" {
		fmt.Fprintf(&b, "\nNotes:\n  %s\n", strings.TrimSpace(doc.Notes))
	}

	return b.String()
}

func preparedForLines(doc Document) []string {
	candidates := []string{doc.ClientName, doc.Company, doc.Email, doc.Phone}
	lines := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		if c != "" {
			lines = append(lines, c)
		}
	}
	if doc.ProjectName != "" {
		lines = append(lines, "Project: "+doc.ProjectName)
	}
	return lines
}

func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
