// Package api provides the HTTP API layer for the Catalog application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for responses and their mappers
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request Validation
//
// Huma provides automatic parsing and validation based on struct tags:
//
//	type ListItemsInput struct {
//	    Query    string `query:"query,omitempty"`
//	    Page     int    `query:"page,omitempty" default:"1"`
//	    PageSize int    `query:"pageSize,omitempty" default:"10"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	catalogHandler := handlers.NewCatalogHandler(catalogService)
//	catalogHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. Domain errors
// are mapped to HTTP status codes: NotFoundError to 404,
// InvalidParameterError to 400, and LoadError to 503 (retryable).
package api
