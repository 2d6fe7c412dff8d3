package domain

// One row of a historical reference dataset: an observed consumption
// rate at a given engine RPM, imported from noon-report spreadsheets.
type ReferencePoint struct {
	RPM             float64
	ConsumptionRate float64
}
