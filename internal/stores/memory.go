package stores

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
)

// MemoryAdapter is an in-memory Adapter used by tests and local
// experiments. Safe for concurrent use.
type MemoryAdapter struct {
	id   catalog.StoreID
	mu   sync.RWMutex
	data map[uuid.UUID]map[string]string
}

func NewMemoryAdapter(id catalog.StoreID) *MemoryAdapter {
	return &MemoryAdapter{
		id:   id,
		data: make(map[uuid.UUID]map[string]string),
	}
}

func (m *MemoryAdapter) ID() catalog.StoreID { return m.id }

func (m *MemoryAdapter) Get(_ context.Context, recordID uuid.UUID, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[recordID][key], nil
}

func (m *MemoryAdapter) Set(_ context.Context, recordID uuid.UUID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[recordID] == nil {
		m.data[recordID] = make(map[string]string)
	}
	m.data[recordID][key] = value
	return nil
}

// Seed preloads a value without going through Set, for test setup.
func (m *MemoryAdapter) Seed(recordID uuid.UUID, key, value string) {
	_ = m.Set(context.Background(), recordID, key, value)
}
