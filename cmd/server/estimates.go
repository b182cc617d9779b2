package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// estimateInput is the editable estimate payload: the quote header plus the
// three line collections.
type estimateInput struct {
	Title       string    `json:"title"`
	ClientName  string    `json:"client_name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ProjectName string    `json:"project_name"`
	QuoteNumber string    `json:"quote_number"`
	ValidDays   flexFloat `json:"valid_days"`
	Notes       string    `json:"notes"`
	lineCollections
}

type estimateRecord struct {
	ID          int64           `json:"id"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Title       string          `json:"title"`
	ClientName  string          `json:"client_name"`
	Company     string          `json:"company"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	ProjectName string          `json:"project_name"`
	QuoteNumber string          `json:"quote_number"`
	ValidDays   int             `json:"valid_days"`
	Notes       string          `json:"notes"`
	Lines       lineCollections `json:"lines"`
}

type estimateResponse struct {
	estimateRecord
	Breakdown breakdown `json:"breakdown"`
}

type estimateListItem struct {
	ID          int64   `json:"id"`
	CreatedAt   string  `json:"created_at"`
	Title       string  `json:"title"`
	ClientName  string  `json:"client_name"`
	QuoteNumber string  `json:"quote_number"`
	Total       float64 `json:"total"`
}

const defaultValidDays = 14

func (s *server) handleEstimateCreate(w http.ResponseWriter, r *http.Request) {
	var input estimateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stored, err := marshalLines(input.lineCollections)
	if err != nil {
		http.Error(w, "failed to encode lines", http.StatusInternalServerError)
		return
	}

	result := computeBreakdown(input.lineCollections, s.catalog)
	totalsJSON, err := json.Marshal(result.GrandTotals)
	if err != nil {
		http.Error(w, "failed to encode totals", http.StatusInternalServerError)
		return
	}

	res, err := s.db.Exec(`
		INSERT INTO estimates (
			title, client_name, company, email, phone, project_name,
			quote_number, valid_days, notes,
			print_lines_json, labor_lines_json, design_lines_json, totals_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		input.Title, input.ClientName, input.Company, input.Email, input.Phone,
		input.ProjectName, input.QuoteNumber, int(input.ValidDays.value(defaultValidDays)),
		input.Notes, stored.print, stored.labor, stored.design, string(totalsJSON),
	)
	if err != nil {
		log.Error().Err(err).Msg("insert estimate")
		http.Error(w, "failed to create estimate", http.StatusInternalServerError)
		return
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Error().Err(err).Msg("read estimate id")
		http.Error(w, "failed to create estimate", http.StatusInternalServerError)
		return
	}

	record, err := s.getEstimate(id)
	if err != nil {
		log.Error().Err(err).Msg("reload estimate")
		http.Error(w, "failed to load estimate", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, estimateResponse{
		estimateRecord: record,
		Breakdown:      result,
	})
}

func (s *server) handleEstimatesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	estimates, err := s.listEstimates(query)
	if err != nil {
		log.Error().Err(err).Msg("list estimates")
		http.Error(w, "failed to load estimates", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"estimates": estimates,
	})
}

func (s *server) handleEstimateGet(w http.ResponseWriter, r *http.Request) {
	id, ok := estimateID(w, r)
	if !ok {
		return
	}

	record, err := s.getEstimate(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load estimate")
		http.Error(w, "failed to load estimate", http.StatusInternalServerError)
		return
	}

	// Derived values are recomputed on every read; the stored snapshot is
	// only for cheap listing.
	respondJSON(w, http.StatusOK, estimateResponse{
		estimateRecord: record,
		Breakdown:      computeBreakdown(record.Lines, s.catalog),
	})
}

func (s *server) handleEstimateUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := estimateID(w, r)
	if !ok {
		return
	}

	var input estimateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	stored, err := marshalLines(input.lineCollections)
	if err != nil {
		http.Error(w, "failed to encode lines", http.StatusInternalServerError)
		return
	}

	result := computeBreakdown(input.lineCollections, s.catalog)
	totalsJSON, err := json.Marshal(result.GrandTotals)
	if err != nil {
		http.Error(w, "failed to encode totals", http.StatusInternalServerError)
		return
	}

	res, err := s.db.Exec(`
		UPDATE estimates
		SET
			title = ?,
			client_name = ?,
			company = ?,
			email = ?,
			phone = ?,
			project_name = ?,
			quote_number = ?,
			valid_days = ?,
			notes = ?,
			print_lines_json = ?,
			labor_lines_json = ?,
			design_lines_json = ?,
			totals_json = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		input.Title, input.ClientName, input.Company, input.Email, input.Phone,
		input.ProjectName, input.QuoteNumber, int(input.ValidDays.value(defaultValidDays)),
		input.Notes, stored.print, stored.labor, stored.design, string(totalsJSON), id,
	)
	if err != nil {
		log.Error().Err(err).Msg("update estimate")
		http.Error(w, "failed to update estimate", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Msg("update estimate")
		http.Error(w, "failed to update estimate", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.NotFound(w, r)
		return
	}

	record, err := s.getEstimate(id)
	if err != nil {
		log.Error().Err(err).Msg("reload estimate")
		http.Error(w, "failed to load estimate", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, estimateResponse{
		estimateRecord: record,
		Breakdown:      result,
	})
}

func (s *server) handleEstimateDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := estimateID(w, r)
	if !ok {
		return
	}

	res, err := s.db.Exec(`DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		log.Error().Err(err).Msg("delete estimate")
		http.Error(w, "failed to delete estimate", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Msg("delete estimate")
		http.Error(w, "failed to delete estimate", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		http.NotFound(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func estimateID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid estimate id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

type storedLines struct {
	print  string
	labor  string
	design string
}

func marshalLines(lines lineCollections) (storedLines, error) {
	printJSON, err := json.Marshal(emptyAsList(lines.PrintLines))
	if err != nil {
		return storedLines{}, err
	}
	laborJSON, err := json.Marshal(emptyAsList(lines.LaborLines))
	if err != nil {
		return storedLines{}, err
	}
	designJSON, err := json.Marshal(emptyAsList(lines.DesignLines))
	if err != nil {
		return storedLines{}, err
	}
	return storedLines{
		print:  string(printJSON),
		labor:  string(laborJSON),
		design: string(designJSON),
	}, nil
}

// emptyAsList keeps nil slices serializing as [] so stored JSON stays uniform.
func emptyAsList[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func (s *server) getEstimate(id int64) (estimateRecord, error) {
	var record estimateRecord
	var printJSON, laborJSON, designJSON string

	err := s.db.QueryRow(`
		SELECT
			id, created_at, updated_at,
			COALESCE(title, ''), COALESCE(client_name, ''), COALESCE(company, ''),
			COALESCE(email, ''), COALESCE(phone, ''), COALESCE(project_name, ''),
			COALESCE(quote_number, ''), valid_days, COALESCE(notes, ''),
			print_lines_json, labor_lines_json, design_lines_json
		FROM estimates
		WHERE id = ?
	`, id).Scan(
		&record.ID, &record.CreatedAt, &record.UpdatedAt,
		&record.Title, &record.ClientName, &record.Company,
		&record.Email, &record.Phone, &record.ProjectName,
		&record.QuoteNumber, &record.ValidDays, &record.Notes,
		&printJSON, &laborJSON, &designJSON,
	)
	if err != nil {
		return estimateRecord{}, err
	}

	if err := json.Unmarshal([]byte(printJSON), &record.Lines.PrintLines); err != nil {
		return estimateRecord{}, err
	}
	if err := json.Unmarshal([]byte(laborJSON), &record.Lines.LaborLines); err != nil {
		return estimateRecord{}, err
	}
	if err := json.Unmarshal([]byte(designJSON), &record.Lines.DesignLines); err != nil {
		return estimateRecord{}, err
	}

	return record, nil
}

func (s *server) listEstimates(query string) ([]estimateListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			id,
			created_at,
			COALESCE(title, ''),
			COALESCE(client_name, ''),
			COALESCE(quote_number, ''),
			totals_json
		FROM estimates
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(client_name, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	estimates := make([]estimateListItem, 0)
	for rows.Next() {
		var item estimateListItem
		var totalsJSON string
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Title, &item.ClientName, &item.QuoteNumber, &totalsJSON); err != nil {
			return nil, err
		}
		item.Total = extractTotalFromJSON(totalsJSON)
		estimates = append(estimates, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return estimates, nil
}

// extractTotalFromJSON pulls the customer-facing total out of a stored totals
// snapshot without recomputing the estimate.
func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"price", "total"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}
