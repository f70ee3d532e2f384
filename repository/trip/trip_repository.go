package trip

import (
	"context"
	"fmt"
	"sync"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository"
	"github.com/shreyasbagave/warehouse/repository/sequence"
)

type TripRepository interface {
	Create(ctx context.Context, t *model.Trip) (*model.Trip, error)
	List(ctx context.Context) ([]model.Trip, error)
	ListByDriver(ctx context.Context, driverID uint64) ([]model.Trip, error)
	GetByTripID(ctx context.Context, tripID string) (*model.Trip, error)
	Update(ctx context.Context, t *model.Trip) error
}

type Memory struct {
	mu    sync.RWMutex
	seq   *sequence.Sequence
	items []model.Trip
}

func NewTripRepository(seq *sequence.Sequence, seed ...model.Trip) TripRepository {
	return &Memory{seq: seq, items: append([]model.Trip{}, seed...)}
}

func (m *Memory) Create(ctx context.Context, t *model.Trip) (*model.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.seq.Next()
	t.TripID = fmt.Sprintf("TRP-%06d", t.ID)
	m.items = append(m.items, *t)
	created := *t
	return &created, nil
}

func (m *Memory) List(ctx context.Context) ([]model.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Trip{}, m.items...), nil
}

func (m *Memory) ListByDriver(ctx context.Context, driverID uint64) ([]model.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Trip, 0)
	for _, it := range m.items {
		if it.DriverID == driverID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *Memory) GetByTripID(ctx context.Context, tripID string) (*model.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, it := range m.items {
		if it.TripID == tripID {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory) Update(ctx context.Context, t *model.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].TripID == t.TripID {
			m.items[i] = *t
			return nil
		}
	}
	return repository.ErrNotFound
}
