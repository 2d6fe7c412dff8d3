package ports

import (
	"context"

	"voyage-fuel-service/internal/domain"
)

// Optional cache for computed voyage plans. Implementations must treat a
// miss as (nil, false, nil), never as an error.
type PlanCache interface {
	GetPlan(ctx context.Context, voyageID int) (*domain.VoyagePlan, bool, error)
	PutPlan(ctx context.Context, voyageID int, plan *domain.VoyagePlan) error
	// Drop any cached plan for the voyage (called on segment writes).
	InvalidatePlan(ctx context.Context, voyageID int) error
}
