// Package api provides the HTTP API layer for the webfetch service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Routes
//
//	GET  /tools          list operations and their argument schemas
//	POST /tools/{name}   call an operation with {"arguments": {...}}
//	POST /scrape         scrape_website with {"url": "..."}
//	GET  /internet       check_internet
//	POST /cache/reset    reset_cache
//	GET  /healthz        cache size and last connectivity probe
//
// Retrieval failures are part of the returned text. Only an unknown
// operation name produces an HTTP error (404).
//
// # Usage Example
//
//	humaAPI, router := api.NewAPI(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//
//	handlers.NewToolsHandler(tools.NewDispatcher(engine)).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "unknown tool: drop_tables"
//	}
package api
