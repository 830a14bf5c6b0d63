// Package handlers implements the REST API endpoint handlers for domaininfo.
//
// REST API Endpoints:
//
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Server statistics (uptime, memory, goroutines)
//   - GET /api/v1/lookup/:domain - Combined WHOIS and DNS lookup for a domain
//
// Authentication:
//
// All endpoints except /health support optional API key authentication via
// the X-API-Key header.
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/domaininfo/internal/lookup"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	service   *lookup.Service
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler backed by the given lookup service.
func New(service *lookup.Service, logger *slog.Logger) *Handler {
	if service == nil {
		panic("handlers.New: service is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		service:   service,
		logger:    logger,
		startTime: time.Now(),
	}
}
