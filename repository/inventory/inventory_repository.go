package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository/sequence"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error)
	List(ctx context.Context) ([]model.InventoryItem, error)
	ListByWarehouse(ctx context.Context, warehouseID string) ([]model.InventoryItem, error)
	GetByID(ctx context.Context, id uint64) (*model.InventoryItem, error)
}

// Memory keeps inventory in an append-only in-memory slice. Items are never
// updated after creation; movements always create new items.
type Memory struct {
	mu    sync.RWMutex
	seq   *sequence.Sequence
	items []model.InventoryItem
}

func NewInventoryRepository(seq *sequence.Sequence, seed ...model.InventoryItem) InventoryRepository {
	return &Memory{seq: seq, items: append([]model.InventoryItem{}, seed...)}
}

func (m *Memory) Create(ctx context.Context, item *model.InventoryItem) (*model.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item.ID = m.seq.Next()
	item.IntakeID = fmt.Sprintf("INTAKE-%d", item.ID)
	m.items = append(m.items, *item)
	created := *item
	return &created, nil
}

func (m *Memory) List(ctx context.Context) ([]model.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.InventoryItem{}, m.items...), nil
}

func (m *Memory) ListByWarehouse(ctx context.Context, warehouseID string) ([]model.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.InventoryItem, 0)
	for _, it := range m.items {
		if it.Warehouse == warehouseID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id uint64) (*model.InventoryItem, error) {
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
