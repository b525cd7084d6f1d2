package usecase

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

// compileInputSchema compiles a tool's declared input schema once, at
// registration time. Format assertions are enabled so "email", "uri" and
// "regex" constraints actually validate.
func compileInputSchema(name string, schema mcp.ToolInputSchema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	url := name + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// validateArgs checks raw arguments against a compiled schema and converts
// the deepest cause into a ValidationError naming the offending field.
// Unknown extra fields are tolerated; they simply have no effect.
func validateArgs(schema *jsonschema.Schema, args map[string]any) error {
	if schema == nil {
		return nil
	}
	err := schema.Validate(args)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return domain.NewValidationError("", err.Error())
	}
	leaf := firstLeaf(ve)
	return domain.NewValidationError(fieldFromLocation(leaf.InstanceLocation), leaf.Message)
}

// firstLeaf walks to the deepest cause of a validation error, which names
// the actual constraint that failed instead of the enclosing object.
func firstLeaf(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}
	return err
}

// fieldFromLocation converts a JSON pointer like "/lineItems/0/quantity"
// into the dotted field path "lineItems.0.quantity".
func fieldFromLocation(loc string) string {
	loc = strings.TrimPrefix(loc, "/")
	return strings.ReplaceAll(loc, "/", ".")
}

// applyDefaults returns a copy of args with every absent field that
// declares a default in the schema filled in. Invoking a tool without an
// optional field is indistinguishable from passing its default explicitly.
func applyDefaults(schema mcp.ToolInputSchema, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	for name, prop := range schema.Properties {
		pm, ok := prop.(map[string]any)
		if !ok {
			continue
		}
		if _, present := out[name]; present {
			continue
		}
		if dv, ok := pm["default"]; ok {
			out[name] = dv
		}
	}
	return out
}
