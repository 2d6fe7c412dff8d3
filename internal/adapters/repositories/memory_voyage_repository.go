package repositories

import (
	"context"
	"sync"

	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/ports"
)

// In-memory implementation of the VoyageRepository port, used in tests
// and for running the server without a database file.
type MemoryVoyageRepository struct {
	mu      sync.Mutex
	nextID  int
	voyages map[int]*domain.Voyage
}

func NewMemoryVoyageRepository() *MemoryVoyageRepository {
	return &MemoryVoyageRepository{
		nextID:  1,
		voyages: make(map[int]*domain.Voyage),
	}
}

func (m *MemoryVoyageRepository) ListVoyages(ctx context.Context) ([]*domain.Voyage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.Voyage, 0, len(m.voyages))
	for id := 1; id < m.nextID; id++ {
		if v, ok := m.voyages[id]; ok {
			out = append(out, cloneVoyage(v))
		}
	}
	return out, nil
}

func (m *MemoryVoyageRepository) GetVoyage(ctx context.Context, voyageID int) (*domain.Voyage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.voyages[voyageID]
	if !ok {
		return nil, ports.ErrVoyageNotFound
	}
	return cloneVoyage(v), nil
}

func (m *MemoryVoyageRepository) CreateVoyage(ctx context.Context, name string, startFuelMt float64) (*domain.Voyage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := domain.NewVoyage(m.nextID, name, startFuelMt)
	m.voyages[v.VoyageID] = v
	m.nextID++
	return cloneVoyage(v), nil
}

func (m *MemoryVoyageRepository) ReplaceSegments(ctx context.Context, voyageID int, segments []domain.RouteSegment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.voyages[voyageID]
	if !ok {
		return ports.ErrVoyageNotFound
	}
	v.ReplaceSegments(segments)
	return nil
}

func cloneVoyage(v *domain.Voyage) *domain.Voyage {
	out := *v
	out.Segments = append([]domain.RouteSegment(nil), v.Segments...)
	return &out
}
