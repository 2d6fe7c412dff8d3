package ports

import (
	"context"

	"voyage-fuel-service/internal/domain"
)

// Port: a boundary for historical reference datasets (observed
// rpm/consumption pairs imported from spreadsheets).
type ReferenceRepository interface {
	// Replace the named dataset with the given points.
	ImportPoints(ctx context.Context, dataset string, points []domain.ReferencePoint) error
	// Return the points of one dataset ordered by rpm.
	ListPoints(ctx context.Context, dataset string) ([]domain.ReferencePoint, error)
	// Return the names of all stored datasets.
	ListDatasets(ctx context.Context) ([]string, error)
}
