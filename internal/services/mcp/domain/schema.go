package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// inputSchema infers the schema for In and attaches default values to the
// named properties. The SDK fills in defaults for omitted arguments before
// the handler runs.
func inputSchema[In any](defaults map[string]any) *jsonschema.Schema {
	schema, err := jsonschema.For[In](nil)
	if err != nil {
		panic(fmt.Sprintf("infer input schema: %v", err))
	}
	for name, value := range defaults {
		prop, ok := schema.Properties[name]
		if !ok {
			panic(fmt.Sprintf("default for unknown property %q", name))
		}
		raw, err := json.Marshal(value)
		if err != nil {
			panic(fmt.Sprintf("marshal default for %q: %v", name, err))
		}
		prop.Default = raw
	}
	return schema
}

// MaxExactInteger is the largest integer argument a tool accepts. The SDK
// decodes arguments through float64 before validation, so larger magnitudes
// would be rounded silently.
const MaxExactInteger = 1<<53 - 1

// exactIntegers bounds the named integer properties to ±MaxExactInteger.
func exactIntegers(schema *jsonschema.Schema, names ...string) *jsonschema.Schema {
	for _, name := range names {
		prop, ok := schema.Properties[name]
		if !ok {
			panic(fmt.Sprintf("bound for unknown property %q", name))
		}
		lo, hi := float64(-MaxExactInteger), float64(MaxExactInteger)
		prop.Minimum = &lo
		prop.Maximum = &hi
	}
	return schema
}

// readOnly marks a tool as free of side effects.
func readOnly(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:        title,
		ReadOnlyHint: true,
	}
}
