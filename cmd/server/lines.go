package main

import (
	"encoding/json"

	"github.com/coastalgraphics/estimator/internal/pricing"
)

// flexFloat decodes a numeric field from either a JSON number or a JSON
// string. The raw text is kept as typed, so estimates round-trip exactly what
// the user entered; coercion to a float happens only when computing, where
// malformed input degrades to a fallback instead of failing the request.
type flexFloat struct {
	raw string
	set bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.raw, f.set = s, true
		return nil
	}
	f.raw, f.set = string(b), true
	return nil
}

func (f flexFloat) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.raw)
}

// value coerces the field, substituting fallback when unset or malformed.
func (f flexFloat) value(fallback float64) float64 {
	if !f.set {
		return fallback
	}
	return pricing.ParseNumber(f.raw, fallback)
}

// optional returns nil when the field is unset, blank, or malformed. An
// explicit "0" stays a set zero.
func (f flexFloat) optional() *float64 {
	if !f.set {
		return nil
	}
	return pricing.ParseOptional(f.raw)
}

type printLineInput struct {
	ItemID      string    `json:"item_id"`
	Notes       string    `json:"notes"`
	Width       flexFloat `json:"width"`
	Height      flexFloat `json:"height"`
	Unit        string    `json:"unit"`
	Qty         flexFloat `json:"qty"`
	Sides       flexFloat `json:"sides"`
	CostPerSqFt flexFloat `json:"cost_per_sqft"`
	SellPerSqFt flexFloat `json:"sell_per_sqft"`
}

func (in printLineInput) toLine() pricing.PrintLine {
	return pricing.PrintLine{
		ItemID:      in.ItemID,
		Notes:       in.Notes,
		Width:       in.Width.value(0),
		Height:      in.Height.value(0),
		Unit:        pricing.Unit(in.Unit),
		Qty:         in.Qty.value(1),
		Sides:       in.Sides.value(1),
		CostPerSqFt: in.CostPerSqFt.optional(),
		SellPerSqFt: in.SellPerSqFt.optional(),
	}
}

type hourlyLineInput struct {
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	PayPerHr  flexFloat `json:"pay_per_hr"`
	BillPerHr flexFloat `json:"bill_per_hr"`
	Hours     flexFloat `json:"hours"`
}

func (in hourlyLineInput) toLine() pricing.HourlyLine {
	return pricing.HourlyLine{
		Name:      in.Name,
		Role:      in.Role,
		PayPerHr:  in.PayPerHr.value(0),
		BillPerHr: in.BillPerHr.value(0),
		Hours:     in.Hours.value(0),
	}
}

// lineCollections is the editable part of an estimate: the three line groups.
type lineCollections struct {
	PrintLines  []printLineInput  `json:"print_lines"`
	LaborLines  []hourlyLineInput `json:"labor_lines"`
	DesignLines []hourlyLineInput `json:"design_lines"`
}

// breakdown is the fully computed view of an estimate's lines.
type breakdown struct {
	PrintLines   []pricing.PrintComputation  `json:"print_lines"`
	LaborLines   []pricing.HourlyComputation `json:"labor_lines"`
	DesignLines  []pricing.HourlyComputation `json:"design_lines"`
	PrintTotals  pricing.PrintTotals         `json:"print_totals"`
	LaborTotals  pricing.HourlyTotals        `json:"labor_totals"`
	DesignTotals pricing.HourlyTotals        `json:"design_totals"`
	GrandTotals  pricing.Totals              `json:"grand_totals"`
}

// computeBreakdown derives every line and total from the raw collections.
// Nothing is cached; each call recomputes from the inputs and catalog.
func computeBreakdown(lines lineCollections, items pricing.ItemResolver) breakdown {
	printLines := make([]pricing.PrintLine, 0, len(lines.PrintLines))
	for _, in := range lines.PrintLines {
		printLines = append(printLines, in.toLine())
	}
	laborLines := make([]pricing.HourlyLine, 0, len(lines.LaborLines))
	for _, in := range lines.LaborLines {
		laborLines = append(laborLines, in.toLine())
	}
	designLines := make([]pricing.HourlyLine, 0, len(lines.DesignLines))
	for _, in := range lines.DesignLines {
		designLines = append(designLines, in.toLine())
	}

	result := breakdown{
		PrintLines:   make([]pricing.PrintComputation, 0, len(printLines)),
		LaborLines:   make([]pricing.HourlyComputation, 0, len(laborLines)),
		DesignLines:  make([]pricing.HourlyComputation, 0, len(designLines)),
		PrintTotals:  pricing.ComputePrintTotals(printLines, items),
		LaborTotals:  pricing.ComputeHourlyTotals(laborLines),
		DesignTotals: pricing.ComputeHourlyTotals(designLines),
	}
	for _, line := range printLines {
		result.PrintLines = append(result.PrintLines, pricing.ComputePrintLine(line, items))
	}
	for _, line := range laborLines {
		result.LaborLines = append(result.LaborLines, pricing.ComputeHourlyLine(line))
	}
	for _, line := range designLines {
		result.DesignLines = append(result.DesignLines, pricing.ComputeHourlyLine(line))
	}

	result.GrandTotals = pricing.ComputeGrandTotals(
		result.PrintTotals.Totals,
		result.LaborTotals.Totals,
		result.DesignTotals.Totals,
	)

	return result
}
