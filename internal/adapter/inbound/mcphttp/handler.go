package mcphttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Handlers struct holds dependencies for the admin HTTP handlers.
type Handlers struct {
	registry *usecase.Registry
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers struct.
func NewHandlers(registry *usecase.Registry, logger *slog.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		logger:   logger.With("component", "mcphttp_handler"),
	}
}

// RegisterAdminRoutes sets up the HTTP routes for admin endpoints.
func (h *Handlers) RegisterAdminRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.HandleFunc("GET /admin/tools", h.handleListTools)
}

// handleHealthz implements GET /healthz.
func (h *Handlers) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// toolSummary is one row of the /admin/tools listing.
type toolSummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	InputSchema any    `json:"inputSchema"`
}

// handleListTools implements GET /admin/tools, listing every registered
// tool with its input schema. Intended for operators checking what the
// server exposes, not for MCP clients.
func (h *Handlers) handleListTools(w http.ResponseWriter, r *http.Request) {
	tools := h.registry.Tools()
	summaries := make([]toolSummary, 0, len(tools))
	for _, t := range tools {
		summaries = append(summaries, toolSummary{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"tools": summaries}); err != nil {
		h.logger.Error("Failed to encode tool listing", slog.Any("error", err))
	}
	h.logger.Debug("Served tool listing", slog.Int("count", len(summaries)))
}
