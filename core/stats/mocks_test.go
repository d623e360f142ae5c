package stats

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"catalog-app-api/core/domain"
	"catalog-app-api/core/interfaces"
)

// mockSource is a mock implementation of the SnapshotSource interface with
// call-count instrumentation
type mockSource struct {
	getFunc func(ctx context.Context) (*domain.Snapshot, error)
	calls   int32
}

func (m *mockSource) Get(ctx context.Context) (*domain.Snapshot, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return &domain.Snapshot{}, nil
}

func (m *mockSource) callCount() int {
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

// mockWatcher records watch requests and lets tests fire synthetic events
type mockWatcher struct {
	mu       sync.Mutex
	watches  int
	onChange func()
	closed   int
}

func (w *mockWatcher) Watch(path string, onChange func()) (interfaces.Subscription, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watches++
	w.onChange = onChange
	return &mockSubscription{watcher: w}, nil
}

func (w *mockWatcher) fire() {
	w.mu.Lock()
	onChange := w.onChange
	w.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

func (w *mockWatcher) watchCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.watches
}

type mockSubscription struct {
	watcher *mockWatcher
}

func (s *mockSubscription) Close() error {
	s.watcher.mu.Lock()
	defer s.watcher.mu.Unlock()
	s.watcher.closed++
	return nil
}

// pricedItems builds items with the given prices in one category
func pricedItems(prices ...string) []domain.Item {
	items := make([]domain.Item, len(prices))
	for i, p := range prices {
		items[i] = domain.Item{ID: i + 1, Name: "Item", Category: "general", Price: p}
	}
	return items
}
