package handlers

import (
	"errors"
	"log"
	"net/http"

	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/ports"
	"voyage-fuel-service/internal/services"
)

type PlanHandler struct {
	Repo  ports.VoyageRepository
	Cache ports.PlanCache
}

// Plan computes the consumption/ROB sequence for a voyage. The request
// body is optional; when present it may carry a start-fuel override for
// what-if planning.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := pathID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid voyage id")
		return
	}

	var req dto.PlanRequest
	if r.ContentLength > 0 {
		if err := decodeStrict(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	svcReq := services.PlanVoyageRequest{VoyageID: id}
	if req.StartFuelMt != nil {
		v := float64(*req.StartFuelMt)
		svcReq.StartFuelMt = &v
	}

	plan, err := services.PlanVoyage(r.Context(), svcReq, h.Repo, h.Cache)
	if errors.Is(err, ports.ErrVoyageNotFound) {
		writeError(w, r, http.StatusNotFound, "voyage not found")
		return
	}
	if err != nil {
		log.Printf("plan voyage failed: voyage_id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, planToResponse(plan))
}
