package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"catalog-app-api/core/domain"
)

var errMiss = errors.New("key not found")

// mockLoader is a mock implementation of the Loader interface with
// call-count instrumentation
type mockLoader struct {
	loadFunc func(ctx context.Context) ([]domain.Item, error)
	calls    int32
}

func (m *mockLoader) Load(ctx context.Context) ([]domain.Item, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.loadFunc != nil {
		return m.loadFunc(ctx)
	}
	return nil, nil
}

func (m *mockLoader) callCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

// fakeClock is a controllable time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// mockStore is a mock implementation of the BackingStore interface
type mockStore struct {
	readFunc func(ctx context.Context) ([]byte, error)
	path     string
}

func (m *mockStore) Read(ctx context.Context) ([]byte, error) {
	if m.readFunc != nil {
		return m.readFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) Path() string {
	if m.path == "" {
		return "mock://catalog"
	}
	return m.path
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getHits int
	sets    int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.entries[key]; ok {
		m.getHits++
		return data, nil
	}
	return nil, errMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// testItems builds a deterministic item collection of the given size
func testItems(n int) []domain.Item {
	items := make([]domain.Item, n)
	for i := 0; i < n; i++ {
		items[i] = domain.Item{
			ID:       i + 1,
			Name:     "Item",
			Category: "general",
			Price:    "10",
		}
	}
	return items
}
