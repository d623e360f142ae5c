// Package core contains the business logic for the Catalog API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Item, Snapshot, Stats, Pagination)
// - catalog: Snapshot loading, caching, filtering and pagination
// - stats: Aggregate statistics and their cache
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, store, watcher, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "catalog-app-api/core/catalog"
//	    "catalog-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create the snapshot pipeline and service
//	loader := catalog.NewSnapshotLoader(myStore, myLogger)
//	cache := catalog.NewSnapshotCache(loader, 30*time.Second, myLogger)
//	service := catalog.NewCatalogService(deps, cache)
//
//	items, meta, err := service.ListItems(ctx, "mug", 1, 10)
package core
