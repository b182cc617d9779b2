package quote

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/coastalgraphics/estimator/internal/pricing"
)

// PDF renders the quote document as PDF bytes using maroto/v2.
func PDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addHeader(m, doc)
	addPreparedFor(m, doc)
	addLineTable(m, doc)
	addTotals(m, doc)
	addFooter(m, doc)

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quote pdf: %w", err)
	}

	return generated.GetBytes(), nil
}

func addHeader(m core.Maroto, doc Document) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New(doc.CompanyName, props.Text{Size: 15, Style: fontstyle.Bold}),
			),
			col.New(4).Add(
				text.New("Date: "+doc.Date, props.Text{Size: 9, Align: align.Right}),
			),
		),
	)

	subtitle := "Quote"
	if doc.QuoteNumber != "" {
		subtitle = "Quote #" + doc.QuoteNumber
	}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(subtitle, props.Text{Size: 11})),
		),
		row.New(3).Add(col.New(12).Add(line.New())),
	)
}

func addPreparedFor(m core.Maroto, doc Document) {
	prepared := preparedForLines(doc)
	if len(prepared) == 0 {
		return
	}

	m.AddRows(row.New(7).Add(
		col.New(12).Add(text.New("Prepared For", props.Text{Size: 10, Style: fontstyle.Bold})),
	))
	for _, ln := range prepared {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New(ln, props.Text{Size: 9})),
		))
	}
	m.AddRows(row.New(4))
}

func addLineTable(m core.Maroto, doc Document) {
	header := props.Text{Size: 9, Style: fontstyle.Bold}
	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New("Item", header)),
			col.New(3).Add(text.New("Notes", header)),
			col.New(2).Add(text.New("Qty", header)),
			col.New(2).Add(text.New("Dimensions", header)),
			col.New(1).Add(text.New("Area", header)),
			col.New(1).Add(text.New("Total", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right})),
		),
	)

	cell := props.Text{Size: 8}
	for _, lineItem := range doc.Lines {
		qty := fmt.Sprintf("%s (x%d side)", formatCount(lineItem.Qty), int(lineItem.Sides))
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(lineItem.Item, cell)),
				col.New(3).Add(text.New(lineItem.Notes, cell)),
				col.New(2).Add(text.New(qty, cell)),
				col.New(2).Add(text.New(lineItem.Dimensions, cell)),
				col.New(1).Add(text.New(formatCount(lineItem.SqFt)+" sqft", cell)),
				col.New(1).Add(text.New(pricing.Money(lineItem.Total), props.Text{Size: 8, Align: align.Right})),
			),
		)
	}
}

func addTotals(m core.Maroto, doc Document) {
	m.AddRows(row.New(4).Add(col.New(12).Add(line.New())))

	totalsRow := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(label, props.Text{Size: 9, Style: style, Align: align.Right})),
			col.New(2).Add(text.New(value, props.Text{Size: 9, Style: style, Align: align.Right})),
		)
	}

	m.AddRows(
		totalsRow("Print Subtotal", pricing.Money(doc.PrintTotal), false),
		totalsRow("Labor", pricing.Money(doc.LaborTotal), false),
		totalsRow("Design", pricing.Money(doc.DesignTotal), false),
		totalsRow("Total", pricing.Money(doc.GrandTotal), true),
	)
}

func addFooter(m core.Maroto, doc Document) {
	m.AddRows(row.New(8).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Valid for %d days.", doc.ValidDays), props.Text{Size: 8})),
	))

	if doc.Notes != "" {
		m.AddRows(
			row.New(6).Add(col.New(12).Add(text.New("Notes:", props.Text{Size: 8, Style: fontstyle.Bold}))),
			row.New(6).Add(col.New(12).Add(text.New(doc.Notes, props.Text{Size: 8}))),
		)
	}
}
