package memory

import (
	"context"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(time.Minute, 10*time.Minute)
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	value, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(value) != "value" {
		t.Errorf("Get returned %q, want %q", value, "value")
	}
}

func TestMemoryCache_GetMissingKey(t *testing.T) {
	cache := newTestCache()

	_, err := cache.Get(context.Background(), "absent")

	if err != ErrCacheMiss {
		t.Errorf("Get returned %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_GetExpiredKey(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("Get returned %v, want ErrCacheMiss after expiry", err)
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := cache.Get(ctx, "key"); err != nil {
		t.Errorf("Get returned %v, want value stored indefinitely", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("Get returned %v, want ErrCacheMiss after delete", err)
	}
}

func TestMemoryCache_DeleteMissingKeyIsNil(t *testing.T) {
	cache := newTestCache()

	if err := cache.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete returned %v, want nil", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), time.Minute)

	first, _ := cache.Get(ctx, "key")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "key")
	if string(second) != "value" {
		t.Errorf("cached value mutated through returned slice: %q", second)
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := newTestCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := cache.Get(ctx, "key"); err != context.Canceled {
		t.Errorf("Get returned %v, want context.Canceled", err)
	}
	if err := cache.Set(ctx, "key", []byte("v"), 0); err != context.Canceled {
		t.Errorf("Set returned %v, want context.Canceled", err)
	}
	if err := cache.Delete(ctx, "key"); err != context.Canceled {
		t.Errorf("Delete returned %v, want context.Canceled", err)
	}
}
