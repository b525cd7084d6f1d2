// Package usecase holds the tool invocation pipeline: registration,
// input validation, dispatch, and result serialization.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpGoServer "github.com/mark3labs/mcp-go/server"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

// ErrToolNotFound is returned when a tool name is not registered. It is a
// protocol-level error, distinct from validation and business errors.
var ErrToolNotFound = errors.New("tool not found")

// ExecuteFunc runs one tool invocation. The args map has already passed
// schema validation and had declared defaults substituted.
type ExecuteFunc func(ctx context.Context, args map[string]any) (any, error)

// Registration pairs a tool definition with its execute function. Both are
// fixed for the process lifetime once registered.
type Registration struct {
	Tool    mcp.Tool
	Execute ExecuteFunc
}

// Registry maps tool names to registrations and drives the invocation
// pipeline: lookup, validation, default substitution, execution, and
// serialization of the result to a single JSON text payload.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]Registration
	schemas map[string]*jsonschema.Schema
	order   []string
	logger  *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		tools:   make(map[string]Registration),
		schemas: make(map[string]*jsonschema.Schema),
		logger:  logger.With("component", "registry"),
	}
}

// Register adds a tool under its unique name. A duplicate name is a
// ConfigurationError, as is an input schema that fails to compile; both are
// startup faults and should abort the process.
func (r *Registry) Register(reg Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := reg.Tool.Name
	if name == "" {
		return &domain.ConfigurationError{Reason: "tool name must not be empty"}
	}
	if _, exists := r.tools[name]; exists {
		return &domain.ConfigurationError{Reason: fmt.Sprintf("duplicate tool name %q", name)}
	}

	schema, err := compileInputSchema(name, reg.Tool.InputSchema)
	if err != nil {
		return &domain.ConfigurationError{Reason: fmt.Sprintf("tool %q input schema: %v", name, err)}
	}

	r.tools[name] = reg
	r.schemas[name] = schema
	r.order = append(r.order, name)
	r.logger.Debug("Registered tool", slog.String("tool_name", name))
	return nil
}

// RegisterAll registers every entry, stopping at the first failure.
func (r *Registry) RegisterAll(regs ...Registration) error {
	for _, reg := range regs {
		if err := r.Register(reg); err != nil {
			return err
		}
	}
	return nil
}

// Tools returns the registered tool definitions in registration order.
func (r *Registry) Tools() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.tools[name].Tool)
	}
	return list
}

// Invoke runs the pipeline for one call and returns the JSON-encoded
// result. Every failure escaping a tool is rewrapped to the uniform
// "Failed to <operation>: <message>" shape; no error is swallowed.
func (r *Registry) Invoke(ctx context.Context, name string, rawArgs map[string]any) (string, error) {
	r.mu.RLock()
	reg, ok := r.tools[name]
	schema := r.schemas[name]
	r.mu.RUnlock()

	if !ok {
		r.logger.Warn("Unknown tool requested", slog.String("tool_name", name))
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	log := r.logger.With(slog.String("tool_name", name))
	op := operationLabel(name)

	if rawArgs == nil {
		rawArgs = map[string]any{}
	}
	if err := validateArgs(schema, rawArgs); err != nil {
		log.Warn("Invalid arguments", slog.Any("error", err))
		return "", domain.WrapToolError(op, err)
	}
	args := applyDefaults(reg.Tool.InputSchema, rawArgs)

	result, err := reg.Execute(ctx, args)
	if err != nil {
		log.Warn("Tool invocation failed", slog.Any("error", err))
		return "", domain.WrapToolError(op, err)
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		log.Error("Failed to encode tool result", slog.Any("error", err))
		return "", domain.WrapToolError(op, fmt.Errorf("encode result: %w", err))
	}
	log.Debug("Tool invocation succeeded")
	return string(encoded), nil
}

// Attach binds every registered tool into the MCP server. The handler
// reports failures as tool-result errors so the protocol layer never sees a
// raw Go error.
func (r *Registry) Attach(srv *mcpGoServer.MCPServer) {
	for _, name := range r.order {
		name := name
		reg := r.tools[name]
		srv.AddTool(reg.Tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := r.Invoke(ctx, name, request.GetArguments())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(result), nil
		})
	}
	r.logger.Info("Tools attached to MCP server", slog.Int("count", len(r.order)))
}

// operationLabel turns a tool name into the human label used in error
// messages: "get-product-by-id" becomes "get product by id".
func operationLabel(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}
