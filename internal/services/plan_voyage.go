package services

import (
	"context"
	"fmt"
	"log"

	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/platform/obs"
	"voyage-fuel-service/internal/ports"
)

type PlanVoyageRequest struct {
	VoyageID int
	// Overrides the stored starting fuel when non-nil (what-if planning).
	StartFuelMt *float64
}

// PlanVoyage loads a voyage and computes its fuel plan.
//
// When a plan cache is wired and no start-fuel override is requested,
// the cached plan is served; cache failures degrade to recomputation
// rather than failing the request. Overridden computations are never
// cached since they do not reflect the stored voyage.
func PlanVoyage(
	ctx context.Context,
	req PlanVoyageRequest,
	repo ports.VoyageRepository,
	cache ports.PlanCache,
) (plan *domain.VoyagePlan, err error) {
	defer obs.Time(ctx, "plan_voyage")(&err)

	useCache := cache != nil && req.StartFuelMt == nil

	if useCache {
		cached, ok, cerr := cache.GetPlan(ctx, req.VoyageID)
		if cerr != nil {
			log.Printf("plan cache get failed: voyage_id=%d err=%v", req.VoyageID, cerr)
		} else if ok {
			return cached, nil
		}
	}

	voyage, err := repo.GetVoyage(ctx, req.VoyageID)
	if err != nil {
		return nil, fmt.Errorf("plan voyage: get voyage %d: %w", req.VoyageID, err)
	}

	startMt := voyage.StartFuelMt
	if req.StartFuelMt != nil {
		startMt = *req.StartFuelMt
		if startMt < 0 {
			startMt = 0
		}
	}

	computed := ComputeRoute(voyage.Segments, startMt)
	computed.VoyageID = voyage.VoyageID
	plan = &computed

	if useCache {
		if cerr := cache.PutPlan(ctx, req.VoyageID, plan); cerr != nil {
			log.Printf("plan cache put failed: voyage_id=%d err=%v", req.VoyageID, cerr)
		}
	}

	return plan, nil
}
