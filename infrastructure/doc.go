// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, file storage, change watching, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - storage/file: File-backed catalog store
// - watch/fswatch: Backing-source change watch over fsnotify
// - logger/structured: Logrus-backed structured logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration values at construction
// - Testable: Core code depends on the interfaces, not on these types
//
// # Cache
//
//	cache := memory.NewMemoryCache(5*time.Minute, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # Storage
//
//	store, err := file.NewStore("data/items.json")
//	data, err := store.Read(ctx)
//
// # Change watch
//
//	watcher := fswatch.NewWatcher(logger)
//	sub, err := watcher.Watch(store.Path(), onChange)
//	defer sub.Close()
//
// # Logger
//
//	logger := structured.NewLogrusLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "items": 42,
//	})
package infrastructure
