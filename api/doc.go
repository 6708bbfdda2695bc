// Package api provides the HTTP admin surface for the OK Crisis pipeline.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers (cycle, archive, health)
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Middleware Support
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
//	humaAPI, router := api.NewAPI(cfg)
//
//	cycleHandler := handlers.NewCycleHandler(orchestrator)
//	cycleHandler.RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807. Domain errors
// are mapped to appropriate HTTP status codes in handlers/errors.go.
package api
