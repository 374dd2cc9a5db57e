// Package api provides the HTTP API layer for the AI Search Engine.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers (health, search, suggestions)
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging with request IDs and per-IP rate limiting
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Endpoints
//
//	GET  /api/health
//	POST /api/search       {"query": "...", "page": 1}
//	GET  /api/suggestions?q=...
//
// # Error Handling
//
// Errors use the RFC 7807 format:
//
//	{
//	    "status": 500,
//	    "title": "Internal Server Error",
//	    "detail": "SerpAPI key not configured"
//	}
package api
