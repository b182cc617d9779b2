package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coastalgraphics/estimator/internal/catalog"
	"github.com/coastalgraphics/estimator/internal/config"
	"github.com/coastalgraphics/estimator/internal/db"
	"github.com/coastalgraphics/estimator/internal/migrations"
	"github.com/coastalgraphics/estimator/internal/seed"
)

type server struct {
	db          *sql.DB
	catalog     *catalog.Catalog
	companyName string
}

func main() {
	initLogger()

	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatal().Err(err).Msg("failed to run database migrations")
		}
		stats, err := seed.Run(database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed catalog")
		}
		if stats.Inserts > 0 {
			log.Info().Int("inserts", stats.Inserts).Msg("seeded catalog")
		}
	}

	cat, err := catalog.Load(database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	srv := &server{db: database, catalog: cat, companyName: cfg.CompanyName}

	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Mount("/", router(srv))

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func router(srv *server) chi.Router {
	r := chi.NewRouter()
	r.Get("/catalog", srv.handleCatalog)
	r.Get("/catalog/items/{id}", srv.handleCatalogItem)
	r.Post("/estimates/compute", srv.handleCompute)
	r.Post("/estimates", srv.handleEstimateCreate)
	r.Get("/estimates", srv.handleEstimatesList)
	r.Get("/estimates/{id}", srv.handleEstimateGet)
	r.Put("/estimates/{id}", srv.handleEstimateUpdate)
	r.Delete("/estimates/{id}", srv.handleEstimateDelete)
	r.Get("/estimates/{id}/quote.txt", srv.handleQuoteText)
	r.Get("/estimates/{id}/quote.pdf", srv.handleQuotePDF)
	return r
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		var event *zerolog.Event
		switch {
		case ww.Status() >= 500:
			event = log.Error()
		case ww.Status() >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	})
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"categories": s.catalog.Categories(),
	})
}

func (s *server) handleCatalogItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.catalog.ItemByID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// handleCompute is the stateless calculation endpoint: line collections in,
// per-line computations plus category and grand totals out.
func (s *server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var lines lineCollections
	if err := json.NewDecoder(r.Body).Decode(&lines); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, computeBreakdown(lines, s.catalog))
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}
