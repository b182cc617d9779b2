package quote

import (
	"strings"
	"testing"
)

func testDocument() Document {
	return Document{
		CompanyName: "Coastal Graphics Group",
		QuoteNumber: "Q-1042",
		Date:        "2026-08-31",
		ClientName:  "Jane Rivera",
		Company:     "Harbor Realty",
		ProjectName: "Lobby signage",
		Notes:       "Install not included.",
		ValidDays:   14,
		Lines: []Line{
			{Item: "13 oz Banner", Notes: "grommets", Qty: 2, Sides: 1, Dimensions: "48 x 24 in", SqFt: 16, Total: 155},
			{Item: "Coroplast", Qty: 1, Sides: 2, Dimensions: "4 x 2 ft", SqFt: 16, Total: 120.5},
		},
		PrintTotal:  275.50,
		LaborTotal:  170,
		DesignTotal: 85,
		GrandTotal:  530.50,
	}
}

func TestTextIncludesHeaderLinesAndTotals(t *testing.T) {
	body := Text(testDocument())

	for _, expected := range []string{
		"Coastal Graphics Group",
		"Quote #Q-1042",
		"Prepared for:",
		"Jane Rivera",
		"Project: Lobby signage",
		"13 oz Banner — grommets | 2 x1 side | 48 x 24 in | 16 sqft | $155.00",
		"Print subtotal: $275.50",
		"Labor: $170.00",
		"Design: $85.00",
		"Total: $530.50",
		"Valid for 14 days.",
		"Install not included.",
	} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q, got:\n%s", expected, body)
		}
	}
}

func TestTextOmitsEmptySections(t *testing.T) {
	doc := testDocument()
	doc.ClientName = ""
	doc.Company = ""
	doc.Email = ""
	doc.Phone = ""
	doc.ProjectName = ""
	doc.Notes = "   "
	doc.QuoteNumber = ""

	body := Text(doc)

	if strings.Contains(body, "Prepared for:") {
		t.Fatalf("expected prepared-for section to be omitted:\n%s", body)
	}
	if strings.Contains(body, "Notes:") {
		t.Fatalf("expected notes section to be omitted:\n%s", body)
	}
	if strings.Contains(body, "Quote #") {
		t.Fatalf("expected bare quote header without number:\n%s", body)
	}
}
