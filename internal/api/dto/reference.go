package dto

type ImportReferenceResponse struct {
	Dataset  string `json:"dataset"`
	Imported int    `json:"imported"`
}

type ReferencePointResponse struct {
	RPM             float64 `json:"rpm"`
	ConsumptionRate float64 `json:"consumption_rate"`
}

type ListReferenceResponse struct {
	Dataset string                   `json:"dataset"`
	Points  []ReferencePointResponse `json:"points"`
}

type ListDatasetsResponse struct {
	Datasets []string `json:"datasets"`
}
