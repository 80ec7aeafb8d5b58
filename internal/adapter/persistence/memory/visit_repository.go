package memory

import (
	"context"
	"sort"
	"sync"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"
)

type VisitRepository struct {
	mu     sync.RWMutex
	visits []entities.Visit
}

var _ interfaces.IVisitRepository = (*VisitRepository)(nil)

func NewVisitRepository() *VisitRepository {
	return &VisitRepository{}
}

func (r *VisitRepository) Create(_ context.Context, v entities.Visit) (entities.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.visits {
		if existing.ID == v.ID {
			return entities.Visit{}, interfaces.ErrDocumentExists
		}
	}
	r.visits = append(r.visits, v)
	return v, nil
}

// ListByClientID returns the client's visits oldest first.
func (r *VisitRepository) ListByClientID(_ context.Context, clientID string) ([]entities.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Visit, 0)
	for _, v := range r.visits {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
