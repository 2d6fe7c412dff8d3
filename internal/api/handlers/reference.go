package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"voyage-fuel-service/internal/adapters/reference"
	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/ports"
)

// ReferenceHandler exposes historical reference dataset endpoints.
type ReferenceHandler struct {
	Refs ports.ReferenceRepository
}

// Import reads a CSV spreadsheet export from the request body and stores
// it as a named dataset. Column indexes default to the standard export
// layout and can be overridden with ?rpm_col= and ?rate_col=.
func (h *ReferenceHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	defer r.Body.Close()

	dataset := strings.TrimSpace(r.URL.Query().Get("dataset"))
	if dataset == "" {
		writeError(w, r, http.StatusBadRequest, "dataset is required")
		return
	}

	cols := reference.DefaultColumns
	if v := r.URL.Query().Get("rpm_col"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 {
			writeError(w, r, http.StatusBadRequest, "rpm_col must be a non-negative integer")
			return
		}
		cols.RPMCol = i
	}
	if v := r.URL.Query().Get("rate_col"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 {
			writeError(w, r, http.StatusBadRequest, "rate_col must be a non-negative integer")
			return
		}
		cols.RateCol = i
	}

	points, err := reference.ParseCSV(r.Body, cols)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid csv body")
		return
	}

	if err := h.Refs.ImportPoints(r.Context(), dataset, points); err != nil {
		log.Printf("import reference failed: dataset=%q err=%v", dataset, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ImportReferenceResponse{
		Dataset:  dataset,
		Imported: len(points),
	})
}

// Datasets lists the names of all stored datasets.
func (h *ReferenceHandler) Datasets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names, err := h.Refs.ListDatasets(r.Context())
	if err != nil {
		log.Printf("list reference datasets failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListDatasetsResponse{Datasets: names})
}

// List returns the points of one dataset.
func (h *ReferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dataset := strings.TrimSpace(r.PathValue("dataset"))
	if dataset == "" {
		writeError(w, r, http.StatusBadRequest, "dataset is required")
		return
	}

	points, err := h.Refs.ListPoints(r.Context(), dataset)
	if err != nil {
		log.Printf("list reference points failed: dataset=%q err=%v", dataset, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListReferenceResponse{
		Dataset: dataset,
		Points:  make([]dto.ReferencePointResponse, 0, len(points)),
	}
	for _, p := range points {
		res.Points = append(res.Points, dto.ReferencePointResponse{
			RPM:             p.RPM,
			ConsumptionRate: p.ConsumptionRate,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
