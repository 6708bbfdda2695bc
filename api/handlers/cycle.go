// ABOUTME: Cycle handler for the Huma API
// ABOUTME: Exposes the manual publishing cycle trigger used by operators

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"okcrisis-api/core/cycle"
)

// CycleRunner triggers a full publishing cycle on demand.
type CycleRunner interface {
	Run(ctx context.Context, mode string) cycle.Result
}

// CycleHandler handles cycle-related HTTP requests
type CycleHandler struct {
	runner CycleRunner
}

// NewCycleHandler creates a new cycle handler
func NewCycleHandler(runner CycleRunner) *CycleHandler {
	return &CycleHandler{runner: runner}
}

// RegisterRoutes registers all cycle-related routes
func (h *CycleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "runCycle",
		Method:      http.MethodPost,
		Path:        "/cycle/run",
		Summary:     "Run a publishing cycle now",
		Description: "Runs the full fetch-evaluate-generate-publish cycle and returns its summary. Blocks until the cycle completes.",
		Tags:        []string{"Cycle"},
	}, h.RunCycle)
}

// RunCycleOutput defines the output for the RunCycle operation
type RunCycleOutput struct {
	Body cycle.Result
}

// RunCycle handles the POST /cycle/run endpoint
func (h *CycleHandler) RunCycle(ctx context.Context, _ *struct{}) (*RunCycleOutput, error) {
	result := h.runner.Run(ctx, "manual")
	return &RunCycleOutput{Body: result}, nil
}
