package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"voyage-fuel-service/internal/adapters/repositories"
	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/fuel"
	"voyage-fuel-service/internal/ports"
)

// In-memory PlanCache double recording hits and puts.
type memPlanCache struct {
	mu    sync.Mutex
	plans map[int]*domain.VoyagePlan
	hits  int
	puts  int
}

func newMemPlanCache() *memPlanCache {
	return &memPlanCache{plans: make(map[int]*domain.VoyagePlan)}
}

func (c *memPlanCache) GetPlan(ctx context.Context, voyageID int) (*domain.VoyagePlan, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[voyageID]
	if ok {
		c.hits++
	}
	return p, ok, nil
}

func (c *memPlanCache) PutPlan(ctx context.Context, voyageID int, plan *domain.VoyagePlan) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans[voyageID] = plan
	c.puts++
	return nil
}

func (c *memPlanCache) InvalidatePlan(ctx context.Context, voyageID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.plans, voyageID)
	return nil
}

func seedVoyage(t *testing.T, repo *repositories.MemoryVoyageRepository) *domain.Voyage {
	t.Helper()

	v, err := repo.CreateVoyage(context.Background(), "trial", 50)
	if err != nil {
		t.Fatalf("create voyage: %v", err)
	}

	err = repo.ReplaceSegments(context.Background(), v.VoyageID, []domain.RouteSegment{
		{DistanceNm: 100, RPM: 80, WeatherFactor: 1.0, SpeedKn: 10},
	})
	if err != nil {
		t.Fatalf("replace segments: %v", err)
	}
	return v
}

func TestPlanVoyage(t *testing.T) {
	repo := repositories.NewMemoryVoyageRepository()
	v := seedVoyage(t, repo)

	plan, err := PlanVoyage(context.Background(), PlanVoyageRequest{VoyageID: v.VoyageID}, repo, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.VoyageID != v.VoyageID {
		t.Errorf("plan voyage id = %d, want %d", plan.VoyageID, v.VoyageID)
	}
	if len(plan.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(plan.Results))
	}

	want := fuel.ConsumptionRate(80, 1.0) * 10
	if math.Abs(plan.Results[0].ConsumptionMt-want) > 1e-12 {
		t.Errorf("consumption = %v, want %v", plan.Results[0].ConsumptionMt, want)
	}
}

func TestPlanVoyageNotFound(t *testing.T) {
	repo := repositories.NewMemoryVoyageRepository()

	_, err := PlanVoyage(context.Background(), PlanVoyageRequest{VoyageID: 99}, repo, nil)
	if !errors.Is(err, ports.ErrVoyageNotFound) {
		t.Fatalf("err = %v, want ErrVoyageNotFound", err)
	}
}

func TestPlanVoyageUsesCache(t *testing.T) {
	repo := repositories.NewMemoryVoyageRepository()
	v := seedVoyage(t, repo)
	cache := newMemPlanCache()

	if _, err := PlanVoyage(context.Background(), PlanVoyageRequest{VoyageID: v.VoyageID}, repo, cache); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}

	if _, err := PlanVoyage(context.Background(), PlanVoyageRequest{VoyageID: v.VoyageID}, repo, cache); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("cache hits = %d, want 1", cache.hits)
	}
}

func TestPlanVoyageOverrideSkipsCache(t *testing.T) {
	repo := repositories.NewMemoryVoyageRepository()
	v := seedVoyage(t, repo)
	cache := newMemPlanCache()

	override := 10.0
	plan, err := PlanVoyage(context.Background(), PlanVoyageRequest{
		VoyageID:    v.VoyageID,
		StartFuelMt: &override,
	}, repo, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.StartFuelMt != 10 {
		t.Errorf("start fuel = %v, want 10", plan.StartFuelMt)
	}
	if cache.puts != 0 || cache.hits != 0 {
		t.Errorf("override touched cache: puts=%d hits=%d", cache.puts, cache.hits)
	}
}
