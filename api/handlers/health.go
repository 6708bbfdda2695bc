// ABOUTME: Health handler for the Huma API
// ABOUTME: Reports service status and archive reachability

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"okcrisis-api/core/interfaces"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	archive interfaces.Archive
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(archive interfaces.Archive) *HealthHandler {
	return &HealthHandler{archive: archive}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body struct {
		Status   string `json:"status"`
		Articles int    `json:"articles"`
		Comics   int    `json:"comics"`
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	resp := &HealthOutput{}
	resp.Body.Status = "ok"

	articles, err := h.archive.LoadArticles(ctx)
	if err != nil {
		resp.Body.Status = "degraded"
		return resp, nil
	}
	resp.Body.Articles = len(articles)

	comics, err := h.archive.LoadComics(ctx)
	if err != nil {
		resp.Body.Status = "degraded"
		return resp, nil
	}
	resp.Body.Comics = len(comics)

	return resp, nil
}
