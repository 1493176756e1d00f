package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mwiater/prodsight/internal/chartrender"
	"github.com/mwiater/prodsight/internal/dashboard"
	"github.com/mwiater/prodsight/internal/export"
	"github.com/mwiater/prodsight/internal/fixtures"
	"github.com/mwiater/prodsight/internal/logging"
	"github.com/mwiater/prodsight/internal/report"
)

// Handler provides the HTTP API endpoints. Every request rebuilds the
// dataset from the seed, so handlers share no mutable state.
type Handler struct {
	opts Options
}

// NewHandler creates a new API handler
func NewHandler(opts Options) *Handler {
	return &Handler{opts: opts}
}

// RegisterRoutes sets up all API routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods("GET")
	r.HandleFunc("/info", h.handleInfo).Methods("GET")

	r.HandleFunc("/tables", h.handleTables).Methods("GET")
	r.HandleFunc("/tables/{name}", h.handleTable).Methods("GET")

	r.HandleFunc("/views", h.handleViews).Methods("GET")
	r.HandleFunc("/views/{id}", h.handleView).Methods("GET")

	r.HandleFunc("/charts/{id:[a-z0-9-]+}.{format:svg|png}", h.handleChart).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.LogEvent("error encoding response: %v", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) dataset() (fixtures.Dataset, error) {
	return fixtures.Build(fixtures.Options{Seed: h.opts.Seed, Palette: h.opts.Theme.Palette})
}

func (h *Handler) dashboard() (dashboard.Dashboard, error) {
	ds, err := h.dataset()
	if err != nil {
		return dashboard.Dashboard{}, err
	}
	return dashboard.Build(ds, h.opts.Theme), nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"version": h.opts.Version,
		"seed":    h.opts.Seed,
		"title":   h.opts.Theme.Page.Title,
		"tables":  export.TableNames,
	}
	respondJSON(w, http.StatusOK, info)
}

func (h *Handler) handleTables(w http.ResponseWriter, r *http.Request) {
	ds, err := h.dataset()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, ds)
}

func (h *Handler) handleTable(w http.ResponseWriter, r *http.Request) {
	ds, err := h.dataset()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	table, err := export.Table(ds, mux.Vars(r)["name"])
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, table)
}

func (h *Handler) handleViews(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, d.Views)
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	id := mux.Vars(r)["id"]
	view, ok := d.View(id)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown view "+id)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	d, err := h.dashboard()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	spec, ok := d.Chart(vars["id"])
	if !ok {
		respondError(w, http.StatusNotFound, "unknown chart "+vars["id"])
		return
	}
	format, err := chartrender.ParseFormat(vars["format"])
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := chartrender.Render(&buf, spec, format); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	page, err := report.Generate(d)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
