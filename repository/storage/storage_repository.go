package storage

import (
	"context"
	"sync"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository"
	"github.com/shreyasbagave/warehouse/repository/sequence"
)

type StorageRepository interface {
	Create(ctx context.Context, req *model.StorageRequest) (*model.StorageRequest, error)
	List(ctx context.Context) ([]model.StorageRequest, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]model.StorageRequest, error)
	GetByID(ctx context.Context, id uint64) (*model.StorageRequest, error)
	Update(ctx context.Context, req *model.StorageRequest) error
}

// Memory keeps storage requests in an insertion-ordered in-memory slice.
// All state is volatile and resets on restart.
type Memory struct {
	mu    sync.RWMutex
	seq   *sequence.Sequence
	items []model.StorageRequest
}

func NewStorageRepository(seq *sequence.Sequence, seed ...model.StorageRequest) StorageRepository {
	return &Memory{seq: seq, items: append([]model.StorageRequest{}, seed...)}
}

func (m *Memory) Create(ctx context.Context, req *model.StorageRequest) (*model.StorageRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = m.seq.Next()
	m.items = append(m.items, *req)
	created := *req
	return &created, nil
}

func (m *Memory) List(ctx context.Context) ([]model.StorageRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.StorageRequest{}, m.items...), nil
}

func (m *Memory) ListByFarmer(ctx context.Context, farmerID string) ([]model.StorageRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.StorageRequest, 0)
	for _, it := range m.items {
		if it.FarmerID == farmerID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id uint64) (*model.StorageRequest, error) {
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

func (m *Memory) Update(ctx context.Context, req *model.StorageRequest) error {
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
