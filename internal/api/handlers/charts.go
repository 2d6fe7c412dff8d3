package handlers

import (
	"errors"
	"log"
	"net/http"

	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/ports"
	"voyage-fuel-service/internal/services"
)

type ChartHandler struct {
	Repo ports.VoyageRepository
	Refs ports.ReferenceRepository
}

// Chart serves the two consumption chart inputs: the theoretical model
// curve with the voyage's working points, and optionally a historical
// reference overlay selected by the ?dataset= query parameter.
func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := pathID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid voyage id")
		return
	}

	voyage, err := h.Repo.GetVoyage(r.Context(), id)
	if errors.Is(err, ports.ErrVoyageNotFound) {
		writeError(w, r, http.StatusNotFound, "voyage not found")
		return
	}
	if err != nil {
		log.Printf("get voyage failed: voyage_id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	dataset := r.URL.Query().Get("dataset")

	series, err := services.BuildChartSeries(r.Context(), voyage, dataset, h.Refs)
	if err != nil {
		log.Printf("build chart series failed: voyage_id=%d dataset=%q err=%v", id, dataset, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ChartSeriesResponse{
		ModelCurve:    workingPointsToResponse(series.ModelCurve),
		WorkingPoints: workingPointsToResponse(series.WorkingPoints),
	}
	for _, p := range series.Reference {
		res.Reference = append(res.Reference, dto.ChartPoint{RPM: p.RPM, Rate: p.ConsumptionRate})
	}

	writeJSON(w, r, http.StatusOK, res)
}
