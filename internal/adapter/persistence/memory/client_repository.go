// Package memory holds mutex-guarded in-process implementations of the
// repository interfaces. They back STORE_DRIVER=memory and the CLI tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"solar_pipeline/internal/domain/entities"
	"solar_pipeline/internal/usecase/interfaces"
)

// ClientRepository keeps client records in a map keyed by id. Records are
// cloned on the way in and out so callers never share maps with the store.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]entities.ClientRecord
	now     func() time.Time
}

var (
	_ interfaces.IClientRepository   = (*ClientRepository)(nil)
	_ interfaces.ILegacyClientSource = (*ClientRepository)(nil)
)

func NewClientRepository() *ClientRepository {
	return &ClientRepository{
		clients: make(map[string]entities.ClientRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ListAll returns every record ordered by id.
func (r *ClientRepository) ListAll(_ context.Context) ([]entities.ClientRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ClientRecord, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.ClientRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.clients[id]
	if !ok {
		return entities.ClientRecord{}, nil
	}
	return c.Clone(), nil
}

func (r *ClientRepository) Create(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[c.ID]; exists {
		return entities.ClientRecord{}, interfaces.ErrDocumentExists
	}
	r.clients[c.ID] = c.Clone()
	return c, nil
}

func (r *ClientRepository) Replace(_ context.Context, c entities.ClientRecord) (entities.ClientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[c.ID]; !exists {
		return entities.ClientRecord{}, nil
	}
	r.clients[c.ID] = c.Clone()
	return c, nil
}

func (r *ClientRepository) UpdateStage(_ context.Context, id string, stage entities.Stage) (entities.ClientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return entities.ClientRecord{}, nil
	}
	c.Stage = stage
	c.UpdatedAt = r.now()
	r.clients[id] = c
	return c.Clone(), nil
}

func (r *ClientRepository) MergeStageNotes(_ context.Context, id string, stage entities.Stage, notes entities.StageNotes) (entities.ClientRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[id]
	if !ok {
		return entities.ClientRecord{}, nil
	}
	c = c.Clone()
	if c.StageNotes == nil {
		c.StageNotes = make(map[entities.Stage]entities.StageNotes)
	}
	c.StageNotes[stage] = notes
	c.UpdatedAt = r.now()
	r.clients[id] = c
	return c.Clone(), nil
}

func (r *ClientRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, id)
	return nil
}
