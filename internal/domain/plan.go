package domain

// Per-segment outcome of a route computation.
type SegmentResult struct {
	ConsumptionMt float64
	RobMt         float64
}

// Represents the computed fuel plan for a voyage.
// A VoyagePlan is the output of the route computation and describes, per
// segment in order, the HFO consumed and the remaining-onboard fuel,
// along with aggregate totals. It is immutable planning data and
// contains no side effects.
type VoyagePlan struct {
	VoyageID           int
	StartFuelMt        float64
	Results            []SegmentResult
	Warning            bool
	TotalConsumptionMt float64
	TotalDistanceNm    float64
	TotalTimeH         float64
}

// A point on the consumption chart: theoretical or weather-corrected
// consumption rate at a given engine RPM.
type WorkingPoint struct {
	RPM  float64
	Rate float64
}
