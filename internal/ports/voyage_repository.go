package ports

import (
	"context"
	"errors"

	"voyage-fuel-service/internal/domain"
)

// Returned by repositories when a voyage id does not exist.
var ErrVoyageNotFound = errors.New("voyage not found")

// Port: a boundary for storing and retrieving Voyage aggregates.
type VoyageRepository interface {
	// Return all voyages, segments included, ordered by id.
	ListVoyages(ctx context.Context) ([]*domain.Voyage, error)
	// Retrieve one voyage with its ordered segments.
	GetVoyage(ctx context.Context, voyageID int) (*domain.Voyage, error)
	// Create a voyage with no segments and return it with its assigned id.
	CreateVoyage(ctx context.Context, name string, startFuelMt float64) (*domain.Voyage, error)
	// Replace the ordered segment list of an existing voyage.
	ReplaceSegments(ctx context.Context, voyageID int, segments []domain.RouteSegment) error
}
