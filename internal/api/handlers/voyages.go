package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/ports"
)

// VoyageHandler exposes voyage CRUD endpoints.
type VoyageHandler struct {
	Repo  ports.VoyageRepository
	Cache ports.PlanCache
}

// Collection handles GET (list) and POST (create) on /voyages.
func (h *VoyageHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *VoyageHandler) list(w http.ResponseWriter, r *http.Request) {
	voyages, err := h.Repo.ListVoyages(r.Context())
	if err != nil {
		log.Printf("list voyages failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVoyagesResponse{
		Voyages: make([]dto.VoyageResponse, 0, len(voyages)),
	}
	for _, v := range voyages {
		res.Voyages = append(res.Voyages, voyageToResponse(v, false))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VoyageHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVoyageRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	voyage, err := h.Repo.CreateVoyage(r.Context(), req.Name, float64(req.StartFuelMt))
	if err != nil {
		log.Printf("create voyage failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, voyageToResponse(voyage, true))
}

// Get returns one voyage with its ordered segments.
func (h *VoyageHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, r, http.StatusOK, voyageToResponse(voyage, true))
}

// ReplaceSegments swaps the ordered segment list of a voyage. Any cached
// plan for the voyage is invalidated afterwards.
func (h *VoyageHandler) ReplaceSegments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.Header().Set("Allow", http.MethodPut)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id, ok := pathID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid voyage id")
		return
	}

	var req dto.ReplaceSegmentsRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	segments := segmentsFromRequest(req.Segments)

	err := h.Repo.ReplaceSegments(r.Context(), id, segments)
	if errors.Is(err, ports.ErrVoyageNotFound) {
		writeError(w, r, http.StatusNotFound, "voyage not found")
		return
	}
	if err != nil {
		log.Printf("replace segments failed: voyage_id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.InvalidatePlan(r.Context(), id); err != nil {
			log.Printf("plan cache invalidate failed: voyage_id=%d err=%v", id, err)
		}
	}

	voyage, err := h.Repo.GetVoyage(r.Context(), id)
	if err != nil {
		log.Printf("reload voyage failed: voyage_id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, voyageToResponse(voyage, true))
}
