package main

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/coastalgraphics/estimator/internal/quote"
)

func (s *server) handleQuoteText(w http.ResponseWriter, r *http.Request) {
	id, ok := estimateID(w, r)
	if !ok {
		return
	}

	doc, err := s.buildQuoteDocument(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("build quote")
		http.Error(w, "failed to build quote", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(quote.Text(doc)))
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := estimateID(w, r)
	if !ok {
		return
	}

	doc, err := s.buildQuoteDocument(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("build quote")
		http.Error(w, "failed to build quote", http.StatusInternalServerError)
		return
	}

	pdf, err := quote.PDF(doc)
	if err != nil {
		log.Error().Err(err).Msg("render quote pdf")
		http.Error(w, "failed to render quote", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="quote.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// buildQuoteDocument loads an estimate and flattens it into the immutable
// document the renderers consume. Line values come from a fresh computation,
// not the stored snapshot.
func (s *server) buildQuoteDocument(id int64) (quote.Document, error) {
	record, err := s.getEstimate(id)
	if err != nil {
		return quote.Document{}, err
	}

	result := computeBreakdown(record.Lines, s.catalog)

	lines := make([]quote.Line, 0, len(result.PrintLines))
	for i, computed := range result.PrintLines {
		input := record.Lines.PrintLines[i]
		lines = append(lines, quote.Line{
			Item:       quoteLineName(input, computed.Item.Name),
			Notes:      input.Notes,
			Qty:        quoteQty(input),
			Sides:      quoteSides(input),
			Dimensions: quoteDimensions(input),
			SqFt:       computed.SqFtTotal,
			Total:      computed.Price,
		})
	}

	return quote.Document{
		CompanyName: s.companyName,
		QuoteNumber: record.QuoteNumber,
		Date:        datePart(record.CreatedAt),
		ClientName:  record.ClientName,
		Company:     record.Company,
		Email:       record.Email,
		Phone:       record.Phone,
		ProjectName: record.ProjectName,
		Notes:       record.Notes,
		ValidDays:   record.ValidDays,
		Lines:       lines,
		PrintTotal:  result.PrintTotals.Price,
		LaborTotal:  result.LaborTotals.Price,
		DesignTotal: result.DesignTotals.Price,
		GrandTotal:  result.GrandTotals.Price,
	}, nil
}

func quoteLineName(input printLineInput, catalogName string) string {
	if catalogName != "" {
		return catalogName
	}
	if input.ItemID != "" {
		return input.ItemID
	}
	return "Custom item"
}

func quoteQty(input printLineInput) float64 {
	qty := input.Qty.value(1)
	if qty < 0 {
		return 0
	}
	return qty
}

func quoteSides(input printLineInput) float64 {
	sides := input.Sides.value(1)
	if sides < 1 {
		return 1
	}
	if sides > 2 {
		return 2
	}
	return sides
}

func quoteDimensions(input printLineInput) string {
	unit := "ft"
	if input.Unit == "in" {
		unit = "in"
	}
	width := strconv.FormatFloat(input.Width.value(0), 'f', -1, 64)
	height := strconv.FormatFloat(input.Height.value(0), 'f', -1, 64)
	return width + " x " + height + " " + unit
}

// datePart trims a sqlite CURRENT_TIMESTAMP value down to its date.
func datePart(timestamp string) string {
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return timestamp
}
