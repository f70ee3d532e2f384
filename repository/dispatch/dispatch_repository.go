package dispatch

import (
	"context"
	"sync"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository"
	"github.com/shreyasbagave/warehouse/repository/sequence"
)

type DispatchRepository interface {
	Create(ctx context.Context, req *model.DispatchRequest) (*model.DispatchRequest, error)
	List(ctx context.Context) ([]model.DispatchRequest, error)
	GetByID(ctx context.Context, id uint64) (*model.DispatchRequest, error)
	Update(ctx context.Context, req *model.DispatchRequest) error
}

type Memory struct {
	mu    sync.RWMutex
	seq   *sequence.Sequence
	items []model.DispatchRequest
}

func NewDispatchRepository(seq *sequence.Sequence, seed ...model.DispatchRequest) DispatchRepository {
	return &Memory{seq: seq, items: append([]model.DispatchRequest{}, seed...)}
}

func (m *Memory) Create(ctx context.Context, req *model.DispatchRequest) (*model.DispatchRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = m.seq.Next()
	m.items = append(m.items, *req)
	created := *req
	return &created, nil
}

func (m *Memory) List(ctx context.Context) ([]model.DispatchRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.DispatchRequest{}, m.items...), nil
}

func (m *Memory) GetByID(ctx context.Context, id uint64) (*model.DispatchRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, it := range m.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory) Update(ctx context.Context, req *model.DispatchRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == req.ID {
			m.items[i] = *req
			return nil
		}
	}
	return repository.ErrNotFound
}
