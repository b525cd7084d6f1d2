// Package tools declares the per-resource tool units: each pairs an input
// schema with an execute function that builds one GraphQL operation, runs
// it on the shared Shopify client, checks business errors, and flattens the
// payload.
package tools

import (
	"strings"

	"github.com/storeops/shopify-admin-mcp/internal/adapter/outbound/shopify"
	"github.com/storeops/shopify-admin-mcp/internal/usecase"
)

// Options carries store-level settings individual tools fall back on.
type Options struct {
	// DefaultLocationID scopes inventory listings when the caller names no
	// location. Bare numeric or gid form; empty means list across locations.
	DefaultLocationID string
}

// All returns every tool registration, wired to the given client.
func All(client shopify.Client, opts Options) []usecase.Registration {
	var regs []usecase.Registration
	regs = append(regs, Products(client)...)
	regs = append(regs, Customers(client)...)
	regs = append(regs, Orders(client)...)
	regs = append(regs, Fulfillments(client)...)
	regs = append(regs, Collections(client)...)
	regs = append(regs, Metafields(client)...)
	regs = append(regs, Inventory(client, opts)...)
	return regs
}

// searchQuery conjoins filter clauses into one Shopify search-query string.
// Empty clauses are dropped; no clauses yields "".
func searchQuery(clauses ...string) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " AND ")
}

// --- argument coercion ---
//
// Validated arguments arrive as a JSON-decoded map, so numbers are float64
// unless a test passed a Go int. These helpers normalize both.

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

func boolArg(args map[string]any, key string) (bool, bool) {
	v, ok := args[key].(bool)
	return v, ok
}

func intArg(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

func intOr(args map[string]any, key string, fallback int) int {
	if v, ok := intArg(args, key); ok {
		return v
	}
	return fallback
}

func stringsArg(args map[string]any, key string) ([]string, bool) {
	switch v := args[key].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func mapArg(args map[string]any, key string) (map[string]any, bool) {
	v, ok := args[key].(map[string]any)
	return v, ok
}

// --- conditional merge ---
//
// Mutation inputs start from required fields and merge each optional field
// only when present: omission, not null, is what the Admin API expects.

func setString(input, args map[string]any, key string) {
	if v, ok := stringArg(args, key); ok {
		input[key] = v
	}
}

func setStringAs(input, args map[string]any, argKey, inputKey string) {
	if v, ok := stringArg(args, argKey); ok {
		input[inputKey] = v
	}
}

func setBool(input, args map[string]any, key string) {
	if v, ok := boolArg(args, key); ok {
		input[key] = v
	}
}

func setStrings(input, args map[string]any, key string) {
	if v, ok := stringsArg(args, key); ok {
		input[key] = v
	}
}

func setMap(input, args map[string]any, key string) {
	if v, ok := mapArg(args, key); ok {
		input[key] = v
	}
}
