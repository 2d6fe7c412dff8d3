package api

import (
	"net/http"

	"voyage-fuel-service/internal/api/handlers"
	"voyage-fuel-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil when no plan cache is configured.
func NewRouter(repo ports.VoyageRepository, refs ports.ReferenceRepository, cache ports.PlanCache) http.Handler {
	mux := http.NewServeMux()

	voyageHandler := &handlers.VoyageHandler{Repo: repo, Cache: cache}
	planHandler := &handlers.PlanHandler{Repo: repo, Cache: cache}
	chartHandler := &handlers.ChartHandler{Repo: repo, Refs: refs}
	refHandler := &handlers.ReferenceHandler{Refs: refs}
	wsHandler := &handlers.WSHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/voyages", voyageHandler.Collection)
	mux.HandleFunc("/voyages/{id}", voyageHandler.Get)
	mux.HandleFunc("/voyages/{id}/segments", voyageHandler.ReplaceSegments)
	mux.HandleFunc("/voyages/{id}/plan", planHandler.Plan)
	mux.HandleFunc("/voyages/{id}/chart", chartHandler.Chart)
	mux.HandleFunc("/reference", refHandler.Datasets)
	mux.HandleFunc("/reference/import", refHandler.Import)
	mux.HandleFunc("/reference/{dataset}", refHandler.List)
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	return requestIDMiddleware(loggingMiddleware(mux))
}
