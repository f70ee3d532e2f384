package warehouse

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository"
)

type WarehouseRepository interface {
	Create(ctx context.Context, w *model.Warehouse) (*model.Warehouse, error)
	List(ctx context.Context) ([]model.Warehouse, error)
	GetByID(ctx context.Context, id string) (*model.Warehouse, error)
	Update(ctx context.Context, w *model.Warehouse) error
	Delete(ctx context.Context, id string) error
}

// Memory holds the warehouse roster. The collection is seeded from the
// generated catalog; admin-created warehouses continue the WH-NNN numbering.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	items  []model.Warehouse
}

func NewWarehouseRepository(seed []model.Warehouse) WarehouseRepository {
	m := &Memory{items: append([]model.Warehouse{}, seed...)}
	for _, w := range seed {
		if n, ok := parseID(w.ID); ok && n >= m.nextID {
			m.nextID = n
		}
	}
	return m
}

func parseID(id string) (int, bool) {
	raw, found := strings.CutPrefix(id, "WH-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m *Memory) Create(ctx context.Context, w *model.Warehouse) (*model.Warehouse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	w.ID = fmt.Sprintf("WH-%03d", m.nextID)
	m.items = append(m.items, *w)
	created := *w
	return &created, nil
}

func (m *Memory) List(ctx context.Context) ([]model.Warehouse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Warehouse{}, m.items...), nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (*model.Warehouse, error) {
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

func (m *Memory) Update(ctx context.Context, w *model.Warehouse) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == w.ID {
			m.items[i] = *w
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes a warehouse. There is no cascade: inventory, transfers and
// trips referencing the ID keep their references.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
