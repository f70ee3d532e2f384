package transfer

import (
	"context"
	"fmt"
	"sync"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository"
	"github.com/shreyasbagave/warehouse/repository/sequence"
)

type TransferRepository interface {
	Create(ctx context.Context, req *model.TransferRequest) (*model.TransferRequest, error)
	List(ctx context.Context) ([]model.TransferRequest, error)
	GetByID(ctx context.Context, id uint64) (*model.TransferRequest, error)
	GetByTripID(ctx context.Context, tripID string) (*model.TransferRequest, error)
	Update(ctx context.Context, req *model.TransferRequest) error
}

type Memory struct {
	mu    sync.RWMutex
	seq   *sequence.Sequence
	items []model.TransferRequest
}

func NewTransferRepository(seq *sequence.Sequence, seed ...model.TransferRequest) TransferRepository {
	return &Memory{seq: seq, items: append([]model.TransferRequest{}, seed...)}
}

func (m *Memory) Create(ctx context.Context, req *model.TransferRequest) (*model.TransferRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = m.seq.Next()
	req.TransferID = fmt.Sprintf("TRF-%06d", req.ID)
	m.items = append(m.items, *req)
	created := *req
	return &created, nil
}

func (m *Memory) List(ctx context.Context) ([]model.TransferRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.TransferRequest{}, m.items...), nil
}

func (m *Memory) GetByID(ctx context.Context, id uint64) (*model.TransferRequest, error) {
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

// GetByTripID resolves the transfer a trip was created for. The link is the
// trip tag stamped onto the transfer at driver assignment.
func (m *Memory) GetByTripID(ctx context.Context, tripID string) (*model.TransferRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, it := range m.items {
		if it.TripID != "" && it.TripID == tripID {
			found := it
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory) Update(ctx context.Context, req *model.TransferRequest) error {
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
