package dto

import "math"

type PlanRequest struct {
	// Overrides the stored starting fuel when present.
	StartFuelMt *Number `json:"start_fuel_mt"`
}

type SegmentResultResponse struct {
	SegmentIndex  int     `json:"segment_index"`
	ConsumptionMt float64 `json:"consumption_mt"`
	RobMt         float64 `json:"rob_mt"`
}

type PlanResponse struct {
	VoyageID           int                     `json:"voyage_id"`
	StartFuelMt        float64                 `json:"start_fuel_mt"`
	Warning            bool                    `json:"warning"`
	TotalConsumptionMt float64                 `json:"total_consumption_mt"`
	TotalDistanceNm    float64                 `json:"total_distance_nm"`
	TotalTimeH         float64                 `json:"total_time_h"`
	Results            []SegmentResultResponse `json:"results"`
}

// Round3 renders fuel quantities with the 3-decimal precision the
// consumers expect.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
