package pricing

import "github.com/coastalgraphics/estimator/internal/catalog"

// Unit is the linear unit of a print line's dimensions.
type Unit string

const (
	UnitInches Unit = "in"
	UnitFeet   Unit = "ft"
)

const maxCount = 999999

// ItemResolver resolves the catalog item a print line references.
// *catalog.Catalog satisfies it.
type ItemResolver interface {
	ItemByID(id string) (catalog.Item, bool)
}

// PrintLine is one area-priced line of an estimate.
//
// CostPerSqFt, when set, replaces the catalog item's cost rate; nil means use
// the catalog. SellPerSqFt is the customer-facing rate; nil means price at
// cost (zero margin). Both are pointers so an explicit zero stays distinct
// from "not set".
type PrintLine struct {
	ItemID      string
	Notes       string
	Width       float64
	Height      float64
	Unit        Unit
	Qty         float64
	Sides       float64
	CostPerSqFt *float64
	SellPerSqFt *float64
}

// HourlyLine is one duration-billed line. Labor and design estimates both use
// it; Name and Role are informational only.
type HourlyLine struct {
	Name      string
	Role      string
	PayPerHr  float64
	BillPerHr float64
	Hours     float64
}

// PrintComputation is the fully derived result for one print line. Monetary
// and area fields are rounded to two decimal places; rates echo the inputs.
type PrintComputation struct {
	Item        catalog.Item `json:"item"`
	ItemFound   bool         `json:"item_found"`
	SqFtEach    float64      `json:"sqft_each"`
	SqFtTotal   float64      `json:"sqft_total"`
	CostPerSqFt float64      `json:"cost_per_sqft"`
	SellPerSqFt float64      `json:"sell_per_sqft"`
	SetupFee    float64      `json:"setup_fee"`
	Cost        float64      `json:"cost"`
	Price       float64      `json:"price"`
	Profit      float64      `json:"profit"`
	MarkupPct   float64      `json:"markup_pct"`
	MarginPct   float64      `json:"margin_pct"`
}

// HourlyComputation is the derived result for one hourly line.
type HourlyComputation struct {
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
	Hours     float64 `json:"hours"`
}

// Totals is a cost/price roll-up. Profit and MarginPct are always re-derived
// from the summed cost and price, never from per-line percentages.
type Totals struct {
	Cost      float64 `json:"cost"`
	Price     float64 `json:"price"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
}

// PrintTotals aggregates the print category, including total area.
type PrintTotals struct {
	Totals
	SqFtTotal float64 `json:"sqft_total"`
}

// HourlyTotals aggregates an hourly category, including total hours.
type HourlyTotals struct {
	Totals
	Hours float64 `json:"hours"`
}

// SquareFeet converts a width/height pair in the given unit to square feet.
// Non-positive dimensions yield 0: an incomplete line has no area, which is a
// valid state rather than an error. An unrecognized unit is treated as feet.
func SquareFeet(width, height float64, unit Unit) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	if unit == UnitInches {
		return (width * height) / 144
	}
	return width * height
}

// ComputePrintLine derives the full costing for one print line.
//
// Effective cost rate is the override if set, else the resolved item's rate,
// else 0. Effective sell rate is the explicit rate if set, else the effective
// cost rate. The setup fee applies to both cost and price, so it never
// contributes to profit.
func ComputePrintLine(line PrintLine, items ItemResolver) PrintComputation {
	item, found := items.ItemByID(line.ItemID)

	qty := clamp(line.Qty, 0, maxCount)
	sides := clamp(line.Sides, 1, 2)

	sqftEach := SquareFeet(line.Width, line.Height, line.Unit)
	sqftTotal := sqftEach * qty * sides

	costRate := 0.0
	if line.CostPerSqFt != nil {
		costRate = *line.CostPerSqFt
	} else if found {
		costRate = item.CostPerSqFt
	}

	sellRate := costRate
	if line.SellPerSqFt != nil {
		sellRate = *line.SellPerSqFt
	}

	setupFee := 0.0
	if found {
		setupFee = item.SetupFee
	}

	cost := sqftTotal*costRate + setupFee
	price := sqftTotal*sellRate + setupFee
	profit := price - cost

	markupPct := 0.0
	if cost > 0 {
		markupPct = profit / cost * 100
	}
	marginPct := 0.0
	if price > 0 {
		marginPct = profit / price * 100
	}

	return PrintComputation{
		Item:        item,
		ItemFound:   found,
		SqFtEach:    Round2(sqftEach),
		SqFtTotal:   Round2(sqftTotal),
		CostPerSqFt: costRate,
		SellPerSqFt: sellRate,
		SetupFee:    setupFee,
		Cost:        Round2(cost),
		Price:       Round2(price),
		Profit:      Round2(profit),
		MarkupPct:   Round2(markupPct),
		MarginPct:   Round2(marginPct),
	}
}

// ComputeHourlyLine derives the costing for one hourly line. Hours below zero
// are clamped to zero.
func ComputeHourlyLine(line HourlyLine) HourlyComputation {
	hours := clamp(line.Hours, 0, maxCount)

	cost := line.PayPerHr * hours
	price := line.BillPerHr * hours
	profit := price - cost

	marginPct := 0.0
	if price > 0 {
		marginPct = profit / price * 100
	}

	return HourlyComputation{
		Cost:      Round2(cost),
		Price:     Round2(price),
		Profit:    Round2(profit),
		MarginPct: Round2(marginPct),
		Hours:     Round2(hours),
	}
}

// ComputePrintTotals sums a print category. Cost and price accumulate from the
// consistently rounded per-line values; profit and margin are re-derived from
// the sums.
func ComputePrintTotals(lines []PrintLine, items ItemResolver) PrintTotals {
	var sqftTotal, cost, price float64
	for _, line := range lines {
		c := ComputePrintLine(line, items)
		sqftTotal += c.SqFtTotal
		cost += c.Cost
		price += c.Price
	}

	return PrintTotals{
		Totals:    deriveTotals(cost, price),
		SqFtTotal: Round2(sqftTotal),
	}
}

// ComputeHourlyTotals sums an hourly category (labor or design).
func ComputeHourlyTotals(lines []HourlyLine) HourlyTotals {
	var cost, price, hours float64
	for _, line := range lines {
		c := ComputeHourlyLine(line)
		cost += c.Cost
		price += c.Price
		hours += c.Hours
	}

	return HourlyTotals{
		Totals: deriveTotals(cost, price),
		Hours:  Round2(hours),
	}
}

// ComputeGrandTotals rolls category totals into the estimate total. Profit and
// margin come from the summed cost and price; averaging per-category margins
// would be wrong whenever categories carry different prices.
func ComputeGrandTotals(categories ...Totals) Totals {
	var cost, price float64
	for _, t := range categories {
		cost += t.Cost
		price += t.Price
	}
	return deriveTotals(cost, price)
}

func deriveTotals(cost, price float64) Totals {
	profit := price - cost
	marginPct := 0.0
	if price > 0 {
		marginPct = profit / price * 100
	}
	return Totals{
		Cost:      Round2(cost),
		Price:     Round2(price),
		Profit:    Round2(profit),
		MarginPct: Round2(marginPct),
	}
}
