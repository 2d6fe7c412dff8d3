package dto

type ChartPoint struct {
	RPM  float64 `json:"rpm"`
	Rate float64 `json:"rate"`
}

type ChartSeriesResponse struct {
	ModelCurve    []ChartPoint `json:"model_curve"`
	WorkingPoints []ChartPoint `json:"working_points"`
	Reference     []ChartPoint `json:"reference,omitempty"`
}
