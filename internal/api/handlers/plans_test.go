package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voyage-fuel-service/internal/adapters/repositories"
	"voyage-fuel-service/internal/api/dto"
	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/fuel"
)

func newPlanRequest(t *testing.T, voyageID string, body string) *http.Request {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodPost, "/voyages/"+voyageID+"/plan", nil)
	} else {
		r = httptest.NewRequest(http.MethodPost, "/voyages/"+voyageID+"/plan", strings.NewReader(body))
	}
	r.SetPathValue("id", voyageID)
	return r
}

func TestPlanHandler(t *testing.T) {
	repo := repositories.NewMemoryVoyageRepository()
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

	h := &PlanHandler{Repo: repo}
	rec := httptest.NewRecorder()

	h.Plan(rec, newPlanRequest(t, "1", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(res.Results))
	}

	wantConsumption := dto.Round3(fuel.ConsumptionRate(80, 1.0) * 10)
	got := res.Results[0]

	if got.ConsumptionMt != wantConsumption {
		t.Errorf("consumption = %v, want %v", got.ConsumptionMt, wantConsumption)
	}
	if got.RobMt != dto.Round3(50-fuel.ConsumptionRate(80, 1.0)*10) {
		t.Errorf("rob = %v", got.RobMt)
	}
	if res.Warning {
		t.Error("unexpected warning")
	}

	// 3-decimal rendering.
	if got.ConsumptionMt != math.Round(got.ConsumptionMt*1000)/1000 {
		t.Errorf("consumption not rounded to 3 decimals: %v", got.ConsumptionMt)
	}
}

func TestPlanHandlerOverride(t *testing.T) {
	repo := repositories.NewMemoryVoyageRepository()
	if _, err := repo.CreateVoyage(context.Background(), "trial", 50); err != nil {
		t.Fatalf("create voyage: %v", err)
	}

	h := &PlanHandler{Repo: repo}
	rec := httptest.NewRecorder()

	h.Plan(rec, newPlanRequest(t, "1", `{"start_fuel_mt": 25}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var res dto.PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.StartFuelMt != 25 {
		t.Errorf("start fuel = %v, want 25", res.StartFuelMt)
	}
}

func TestPlanHandlerNotFound(t *testing.T) {
	h := &PlanHandler{Repo: repositories.NewMemoryVoyageRepository()}
	rec := httptest.NewRecorder()

	h.Plan(rec, newPlanRequest(t, "42", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPlanHandlerBadID(t *testing.T) {
	h := &PlanHandler{Repo: repositories.NewMemoryVoyageRepository()}
	rec := httptest.NewRecorder()

	h.Plan(rec, newPlanRequest(t, "abc", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
