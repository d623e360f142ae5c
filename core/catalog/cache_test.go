package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"catalog-app-api/core/domain"
)

func TestSnapshotCache_FirstGetLoads(t *testing.T) {
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil)

	snap, err := cache.Get(context.Background())

	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(snap.Items) != 3 {
		t.Errorf("snapshot has %d items, want 3", len(snap.Items))
	}
	if snap.Generation != 1 {
		t.Errorf("Generation = %d, want 1", snap.Generation)
	}
	if loader.callCount() != 1 {
		t.Errorf("loader invoked %d times, want 1", loader.callCount())
	}
}

func TestSnapshotCache_ValidEntryServedWithoutReload(t *testing.T) {
	clock := newFakeClock()
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil, WithClock(clock.Now))

	first, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("first Get returned error: %v", err)
	}

	clock.Advance(29 * time.Second)

	second, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("second Get returned error: %v", err)
	}

	if first != second {
		t.Error("second Get returned a different snapshot before TTL expiry")
	}
	if loader.callCount() != 1 {
		t.Errorf("loader invoked %d times, want 1", loader.callCount())
	}
}

func TestSnapshotCache_TTLExpiryTriggersReload(t *testing.T) {
	clock := newFakeClock()
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil, WithClock(clock.Now))

	first, _ := cache.Get(context.Background())
	clock.Advance(30 * time.Second)
	second, err := cache.Get(context.Background())

	if err != nil {
		t.Fatalf("Get after expiry returned error: %v", err)
	}
	if loader.callCount() != 2 {
		t.Errorf("loader invoked %d times, want 2", loader.callCount())
	}
	if second.Generation != first.Generation+1 {
		t.Errorf("Generation = %d, want %d", second.Generation, first.Generation+1)
	}
}

func TestSnapshotCache_ConcurrentGetsTriggerSingleLoad(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		close(started)
		<-release
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil)

	var wg sync.WaitGroup
	results := make([]*domain.Snapshot, 2)
	errs := make([]error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = cache.Get(context.Background())
	}()

	// Second caller arrives while the first load is in flight
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], errs[1] = cache.Get(context.Background())
	}()

	// Give the second goroutine a moment to join the in-flight load
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range errs {
		if errs[i] != nil {
			t.Fatalf("Get %d returned error: %v", i, errs[i])
		}
	}
	if loader.callCount() != 1 {
		t.Errorf("loader invoked %d times, want exactly 1", loader.callCount())
	}
	if results[0] != results[1] {
		t.Error("concurrent callers received different snapshots")
	}
}

func TestSnapshotCache_FirstLoadFailurePropagates(t *testing.T) {
	loadErr := errors.New("disk on fire")
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		return nil, loadErr
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil)

	_, err := cache.Get(context.Background())

	if !errors.Is(err, loadErr) {
		t.Errorf("Get returned %v, want the loader error", err)
	}
}

func TestSnapshotCache_RefreshFailureServesStale(t *testing.T) {
	clock := newFakeClock()
	fail := false
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		if fail {
			return nil, errors.New("backing source unreadable")
		}
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil,
		WithClock(clock.Now), WithServeStale(true))

	first, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("first Get returned error: %v", err)
	}

	fail = true
	clock.Advance(time.Minute)

	snap, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error %v, want stale snapshot", err)
	}
	if snap != first {
		t.Error("Get did not serve the stale snapshot")
	}
}

func TestSnapshotCache_RefreshFailurePropagatesWhenStaleDisabled(t *testing.T) {
	clock := newFakeClock()
	fail := false
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		if fail {
			return nil, errors.New("backing source unreadable")
		}
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil,
		WithClock(clock.Now), WithServeStale(false))

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("first Get returned error: %v", err)
	}

	fail = true
	clock.Advance(time.Minute)

	if _, err := cache.Get(context.Background()); err == nil {
		t.Error("Get returned nil error, want refresh failure")
	}
}

func TestSnapshotCache_FailedRefreshKeepsPreviousEntry(t *testing.T) {
	clock := newFakeClock()
	fail := false
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		if fail {
			return nil, errors.New("transient")
		}
		return testItems(5), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil,
		WithClock(clock.Now), WithServeStale(true))

	first, _ := cache.Get(context.Background())
	clock.Advance(time.Minute)

	fail = true
	stale, _ := cache.Get(context.Background())
	if stale != first {
		t.Fatal("expected the original snapshot while refresh fails")
	}

	// Recovery: the next reload replaces the entry wholesale
	fail = false
	fresh, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("Get after recovery returned error: %v", err)
	}
	if fresh == first {
		t.Error("Get served the stale snapshot after the loader recovered")
	}
	if fresh.Generation != first.Generation+1 {
		t.Errorf("Generation = %d, want %d", fresh.Generation, first.Generation+1)
	}
}

func TestSnapshotCache_InvalidateForcesReload(t *testing.T) {
	clock := newFakeClock()
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil, WithClock(clock.Now))

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	cache.Invalidate()
	// Well within TTL, yet the next Get must reload
	clock.Advance(time.Second)

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get after Invalidate returned error: %v", err)
	}
	if loader.callCount() != 2 {
		t.Errorf("loader invoked %d times, want 2", loader.callCount())
	}
}

func TestSnapshotCache_InvalidateDuringLoadForcesReload(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var calls int
	loader := &mockLoader{loadFunc: func(ctx context.Context) ([]domain.Item, error) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			close(started)
			<-release
		}
		return testItems(3), nil
	}}
	cache := NewSnapshotCache(loader, 30*time.Second, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = cache.Get(context.Background())
	}()

	// The backing source changes while the first load is still in flight
	<-started
	cache.Invalidate()
	close(release)
	wg.Wait()

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("Get after Invalidate returned error: %v", err)
	}
	if loader.callCount() != 2 {
		t.Errorf("loader invoked %d times, want 2: the in-flight load must not survive the invalidation", loader.callCount())
	}
}
