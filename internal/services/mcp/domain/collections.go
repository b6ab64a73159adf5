package domain

import (
	"context"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ChoiceInput represents the MCP tool input for a uniform choice.
type ChoiceInput struct {
	Items []any `json:"items" jsonschema:"items to choose from"`
}

// ChoiceResult represents the MCP tool output for a uniform choice.
type ChoiceResult struct {
	Value any `json:"value" jsonschema:"chosen item"`
}

// ShuffleInput represents the MCP tool input for a shuffle.
type ShuffleInput struct {
	Items []any `json:"items" jsonschema:"items to shuffle"`
}

// ShuffleResult represents the MCP tool output for a shuffle.
type ShuffleResult struct {
	Items []any `json:"items" jsonschema:"items in random order"`
}

// SampleInput represents the MCP tool input for sampling without replacement.
type SampleInput struct {
	Items []any `json:"items" jsonschema:"items to sample from"`
	Count int   `json:"count" jsonschema:"number of items to pick"`
}

// SampleResult represents the MCP tool output for sampling without replacement.
type SampleResult struct {
	Items []any `json:"items" jsonschema:"picked items in random order"`
}

// WeightedChoiceInput represents the MCP tool input for a weighted choice.
type WeightedChoiceInput struct {
	Options []any     `json:"options" jsonschema:"options to choose from"`
	Weights []float64 `json:"weights" jsonschema:"non-negative weight for each option"`
}

// WeightedChoiceResult represents the MCP tool output for a weighted choice.
type WeightedChoiceResult struct {
	Value any `json:"value" jsonschema:"chosen option"`
}

// ChoiceTool defines the MCP tool schema for uniform choices.
func ChoiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_choice",
		Description: "Picks one item uniformly at random from a list",
		InputSchema: inputSchema[ChoiceInput](nil),
		Annotations: readOnly("Random choice"),
	}
}

// ShuffleTool defines the MCP tool schema for shuffles.
func ShuffleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_shuffle",
		Description: "Returns the items of a list in a uniformly random order",
		InputSchema: inputSchema[ShuffleInput](nil),
		Annotations: readOnly("Random shuffle"),
	}
}

// SampleTool defines the MCP tool schema for sampling without replacement.
func SampleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_sample",
		Description: "Picks count distinct items from a list without replacement",
		InputSchema: inputSchema[SampleInput](nil),
		Annotations: readOnly("Random sample"),
	}
}

// WeightedChoiceTool defines the MCP tool schema for weighted choices.
func WeightedChoiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_weighted_choice",
		Description: "Picks one option with probability proportional to its weight",
		InputSchema: inputSchema[WeightedChoiceInput](nil),
		Annotations: readOnly("Weighted choice"),
	}
}

// ChoiceHandler picks one item.
func ChoiceHandler(e *engine.Engine) mcp.ToolHandlerFor[ChoiceInput, ChoiceResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ChoiceInput) (*mcp.CallToolResult, ChoiceResult, error) {
		value, err := engine.Choice(e, input.Items)
		if err != nil {
			return nil, ChoiceResult{}, toolError(err)
		}
		text, err := renderValue(value)
		if err != nil {
			return nil, ChoiceResult{}, err
		}
		return textResult(text), ChoiceResult{Value: value}, nil
	}
}

// ShuffleHandler shuffles the items.
func ShuffleHandler(e *engine.Engine) mcp.ToolHandlerFor[ShuffleInput, ShuffleResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShuffleInput) (*mcp.CallToolResult, ShuffleResult, error) {
		items, err := engine.Shuffle(e, input.Items)
		if err != nil {
			return nil, ShuffleResult{}, toolError(err)
		}
		text, err := renderJSON(items)
		if err != nil {
			return nil, ShuffleResult{}, err
		}
		return textResult(text), ShuffleResult{Items: items}, nil
	}
}

// SampleHandler picks count distinct items.
func SampleHandler(e *engine.Engine) mcp.ToolHandlerFor[SampleInput, SampleResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SampleInput) (*mcp.CallToolResult, SampleResult, error) {
		items, err := engine.Sample(e, input.Items, input.Count)
		if err != nil {
			return nil, SampleResult{}, toolError(err)
		}
		text, err := renderJSON(items)
		if err != nil {
			return nil, SampleResult{}, err
		}
		return textResult(text), SampleResult{Items: items}, nil
	}
}

// WeightedChoiceHandler picks one option by weight.
func WeightedChoiceHandler(e *engine.Engine) mcp.ToolHandlerFor[WeightedChoiceInput, WeightedChoiceResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WeightedChoiceInput) (*mcp.CallToolResult, WeightedChoiceResult, error) {
		value, err := engine.WeightedChoice(e, input.Options, input.Weights)
		if err != nil {
			return nil, WeightedChoiceResult{}, toolError(err)
		}
		text, err := renderValue(value)
		if err != nil {
			return nil, WeightedChoiceResult{}, err
		}
		return textResult(text), WeightedChoiceResult{Value: value}, nil
	}
}
