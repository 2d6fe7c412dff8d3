package dto

type Waypoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SegmentRequest struct {
	DistanceNm    Number     `json:"distance_nm"`
	RPM           Number     `json:"rpm"`
	WeatherFactor Number     `json:"weather_factor"`
	TimeH         Number     `json:"time_h"`
	SpeedKn       Number     `json:"speed_kn"`
	Waypoints     []Waypoint `json:"waypoints,omitempty"`
}

type ReplaceSegmentsRequest struct {
	Segments []SegmentRequest `json:"segments"`
}

type CreateVoyageRequest struct {
	Name        string `json:"name"`
	StartFuelMt Number `json:"start_fuel_mt"`
}

type SegmentResponse struct {
	DistanceNm    float64    `json:"distance_nm"`
	RPM           float64    `json:"rpm"`
	WeatherFactor float64    `json:"weather_factor"`
	TimeH         float64    `json:"time_h"`
	SpeedKn       float64    `json:"speed_kn"`
	Waypoints     []Waypoint `json:"waypoints,omitempty"`
}

type VoyageResponse struct {
	VoyageID     int               `json:"voyage_id"`
	Name         string            `json:"name"`
	StartFuelMt  float64           `json:"start_fuel_mt"`
	SegmentCount int               `json:"segment_count"`
	Segments     []SegmentResponse `json:"segments,omitempty"`
}

type ListVoyagesResponse struct {
	Voyages []VoyageResponse `json:"voyages"`
}
