package tools

import "github.com/mark3labs/mcp-go/mcp"

// Property options the mcp-go DSL does not ship, expressed as plain schema
// keyword writers.

// withFormat sets a JSON Schema format assertion ("email", "uri", ...).
func withFormat(format string) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["format"] = format
	}
}

// asInteger narrows a number property to whole values.
func asInteger() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

// withRequired marks keys of an object property as required.
func withRequired(keys ...string) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["required"] = keys
	}
}

// withRawProperty attaches a hand-written property schema, for shapes the
// option DSL cannot express (e.g. oneOf array-or-string).
func withRawProperty(name string, required bool, schema map[string]any) mcp.ToolOption {
	return func(t *mcp.Tool) {
		t.InputSchema.Properties[name] = schema
		if required {
			t.InputSchema.Required = append(t.InputSchema.Required, name)
		}
	}
}

// stringSchema builds a {"type":"string"} property map for raw schemas.
func stringSchema(description string) map[string]any {
	s := map[string]any{"type": "string"}
	if description != "" {
		s["description"] = description
	}
	return s
}
