package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-process DocumentStore. It backs the memory database
// driver for local runs and the unit tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]map[string]any
	// Err, when set, is returned by every CreateDocument call.
	Err error
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]map[string]any)}
}

func (m *MemoryRepo) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if collection == "" {
		return "", ErrEmptyCollection
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	id := primitive.NewObjectID().Hex()
	col, ok := m.store[collection]
	if !ok {
		col = make(map[string]any)
		m.store[collection] = col
	}
	col[id] = record
	return id, nil
}

// Get returns a stored record by collection and id.
func (m *MemoryRepo) Get(collection, id string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.store[collection][id]
	return rec, ok
}

// Count returns the number of records in a collection.
func (m *MemoryRepo) Count(collection string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store[collection])
}

// ListCollectionNames lets the diagnostics probe inspect the memory driver
// the same way it inspects MongoDB.
func (m *MemoryRepo) ListCollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.store))
	for name := range m.store {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
