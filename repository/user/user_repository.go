package user

import (
	"context"
	"sync"
	"time"

	"github.com/shreyasbagave/warehouse/model"
	"github.com/shreyasbagave/warehouse/repository/sequence"
)

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

type Memory struct {
	mu    sync.RWMutex
	seq   *sequence.Sequence
	items []model.UserEntity
}

func NewUserRepository(seq *sequence.Sequence, seed ...model.UserEntity) UserRepository {
	return &Memory{seq: seq, items: append([]model.UserEntity{}, seed...)}
}

func (m *Memory) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data.ID = m.seq.Next()
	data.CreatedAt = time.Now()
	m.items = append(m.items, *data)
	created := *data
	return &created, nil
}

// Get returns the first user matching every non-zero filter field, or
// (nil, nil) when none matches.
func (m *Memory) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, it := range m.items {
		if filter.ID != 0 && it.ID != filter.ID {
			continue
		}
		if filter.Email != "" && it.Email != filter.Email {
			continue
		}
		if filter.Phone != "" && it.Phone != filter.Phone {
			continue
		}
		found := it
		return &found, nil
	}
	return nil, nil
}
