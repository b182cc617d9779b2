package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createQuoteFixture(t *testing.T, s *server) int64 {
	t.Helper()

	rec := postJSON(t, s, http.MethodPost, "/estimates", map[string]any{
		"title":        "Lobby signage",
		"client_name":  "Harborview Realty",
		"company":      "Harborview Realty LLC",
		"project_name": "Lobby refresh",
		"quote_number": "Q-1042",
		"notes":        "Install scheduled after hours.",
		"print_lines": []map[string]any{
			{
				"item_id":       "banner_13oz",
				"notes":         "Hemmed and grommeted",
				"width":         48,
				"height":        24,
				"unit":          "in",
				"qty":           4,
				"sell_per_sqft": 6.5,
			},
		},
		"labor_lines": []map[string]any{
			{"name": "Install crew", "pay_per_hr": 25, "bill_per_hr": 85, "hours": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp estimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.ID
}

func TestQuoteTextEndpoint(t *testing.T) {
	s := newTestServer(t)
	id := createQuoteFixture(t, s)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/estimates/%d/quote.txt", id), nil)
	rec := httptest.NewRecorder()
	router(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Coastal Graphics Group")
	assert.Contains(t, body, "Quote #Q-1042")
	assert.Contains(t, body, "Harborview Realty")
	assert.Contains(t, body, "Project: Lobby refresh")
	assert.Contains(t, body, "48 x 24 in")
	assert.Contains(t, body, "8 sqft")
	assert.Contains(t, body, "Print subtotal: $208.00")
	assert.Contains(t, body, "Labor: $170.00")
	assert.Contains(t, body, "Total: $378.00")
	assert.Contains(t, body, "Valid for 14 days.")
	assert.Contains(t, body, "Install scheduled after hours.")
}

func TestQuoteTextNotFound(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/estimates/9999/quote.txt", nil)
	rec := httptest.NewRecorder()
	router(s).ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuotePDFEndpoint(t *testing.T) {
	s := newTestServer(t)
	id := createQuoteFixture(t, s)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/estimates/%d/quote.pdf", id), nil)
	rec := httptest.NewRecorder()
	router(s).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")), "body should be a PDF document")
}

func TestComputeEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, http.MethodPost, "/estimates/compute", map[string]any{
		"print_lines": []map[string]any{
			{"item_id": "banner_13oz", "width": "48", "height": "24", "unit": "in", "qty": 4, "sell_per_sqft": "6.5"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result breakdown
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	require.Len(t, result.PrintLines, 1)
	nearlyEqual(t, "sqft each", result.PrintLines[0].SqFtEach, 8)
	nearlyEqual(t, "cost", result.PrintTotals.Cost, 136)
	nearlyEqual(t, "price", result.PrintTotals.Price, 208)
	nearlyEqual(t, "margin", result.GrandTotals.MarginPct, 34.62)
}

func TestComputeEndpointRejectsInvalidJSON(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/estimates/compute", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router(s).ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteDimensionFormatting(t *testing.T) {
	var line printLineInput
	require.NoError(t, json.Unmarshal([]byte(`{"width":48,"height":24,"unit":"in"}`), &line))
	assert.Equal(t, "48 x 24 in", quoteDimensions(line))

	var feet printLineInput
	require.NoError(t, json.Unmarshal([]byte(`{"width":4.5,"height":2,"unit":"furlongs"}`), &feet))
	// Anything that is not inches reads as feet.
	assert.Equal(t, "4.5 x 2 ft", quoteDimensions(feet))
}
