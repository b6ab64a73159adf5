package domain

import (
	"context"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FloatInput represents the MCP tool input for a uniform float.
type FloatInput struct {
	Min       float64 `json:"min,omitempty" jsonschema:"minimum value (inclusive)"`
	Max       float64 `json:"max,omitempty" jsonschema:"maximum value (inclusive)"`
	Precision int     `json:"precision,omitempty" jsonschema:"number of decimal places"`
}

// FloatResult represents the MCP tool output for a uniform float.
type FloatResult struct {
	Value float64 `json:"value" jsonschema:"generated number"`
}

// NormalInput represents the MCP tool input for a normal deviate.
type NormalInput struct {
	Mean   float64 `json:"mean,omitempty" jsonschema:"mean of the distribution"`
	Stddev float64 `json:"stddev,omitempty" jsonschema:"standard deviation of the distribution"`
}

// NormalResult represents the MCP tool output for a normal deviate.
type NormalResult struct {
	Value float64 `json:"value" jsonschema:"generated number"`
}

// FloatTool defines the MCP tool schema for uniform floats.
func FloatTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_float",
		Description: "Generates a cryptographically secure random float between min and max",
		InputSchema: inputSchema[FloatInput](map[string]any{
			"min":       0,
			"max":       1,
			"precision": engine.DefaultPrecision,
		}),
		Annotations: readOnly("Random float"),
	}
}

// NormalTool defines the MCP tool schema for normal deviates.
func NormalTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_normal",
		Description: "Generates a random number from a normal (Gaussian) distribution",
		InputSchema: inputSchema[NormalInput](map[string]any{"mean": 0, "stddev": 1}),
		Annotations: readOnly("Random normal"),
	}
}

// FloatHandler draws a uniform float.
func FloatHandler(e *engine.Engine) mcp.ToolHandlerFor[FloatInput, FloatResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FloatInput) (*mcp.CallToolResult, FloatResult, error) {
		value, err := e.Float(input.Min, input.Max, input.Precision)
		if err != nil {
			return nil, FloatResult{}, toolError(err)
		}
		return textResult(formatFloat(value)), FloatResult{Value: value}, nil
	}
}

// NormalHandler draws a normal deviate.
func NormalHandler(e *engine.Engine) mcp.ToolHandlerFor[NormalInput, NormalResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NormalInput) (*mcp.CallToolResult, NormalResult, error) {
		value, err := e.Normal(input.Mean, input.Stddev)
		if err != nil {
			return nil, NormalResult{}, toolError(err)
		}
		return textResult(formatFloat(value)), NormalResult{Value: value}, nil
	}
}
