package domain

import (
	"context"
	"strconv"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// IntInput represents the MCP tool input for a bounded integer.
type IntInput struct {
	Min int64 `json:"min" jsonschema:"minimum value (inclusive)"`
	Max int64 `json:"max" jsonschema:"maximum value (inclusive)"`
}

// IntResult represents the MCP tool output for a bounded integer.
type IntResult struct {
	Value int64 `json:"value" jsonschema:"generated integer"`
}

// FlipCoinInput represents the MCP tool input for coin flips.
type FlipCoinInput struct {
	Count int `json:"count,omitempty" jsonschema:"number of flips"`
}

// FlipCoinResult represents the MCP tool output for coin flips.
type FlipCoinResult struct {
	Flips []string `json:"flips" jsonschema:"flip results in draw order"`
	Heads int      `json:"heads" jsonschema:"number of heads"`
	Tails int      `json:"tails" jsonschema:"number of tails"`
}

// RollDiceInput represents the MCP tool input for rolling dice.
type RollDiceInput struct {
	Sides int `json:"sides,omitempty" jsonschema:"number of sides per die"`
	Count int `json:"count,omitempty" jsonschema:"number of dice to roll"`
}

// RollDiceResult represents the MCP tool output for rolling dice.
type RollDiceResult struct {
	Rolls []int `json:"rolls" jsonschema:"individual die results in draw order"`
	Sum   int   `json:"sum" jsonschema:"sum of all rolls"`
}

// IntTool defines the MCP tool schema for bounded integers.
func IntTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_int",
		Description: "Generates a cryptographically secure random integer between min and max (inclusive)",
		InputSchema: exactIntegers(inputSchema[IntInput](nil), "min", "max"),
		Annotations: readOnly("Random integer"),
	}
}

// FlipCoinTool defines the MCP tool schema for coin flips.
func FlipCoinTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "flip_coin",
		Description: "Flips a fair coin one or more times",
		InputSchema: inputSchema[FlipCoinInput](map[string]any{"count": 1}),
		Annotations: readOnly("Flip coin"),
	}
}

// RollDiceTool defines the MCP tool schema for rolling dice.
func RollDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice",
		Description: "Rolls one or more dice with the given number of sides",
		InputSchema: exactIntegers(inputSchema[RollDiceInput](map[string]any{"sides": 6, "count": 1}), "sides"),
		Annotations: readOnly("Roll dice"),
	}
}

// IntHandler draws a bounded integer.
func IntHandler(e *engine.Engine) mcp.ToolHandlerFor[IntInput, IntResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input IntInput) (*mcp.CallToolResult, IntResult, error) {
		value, err := e.Int(input.Min, input.Max)
		if err != nil {
			return nil, IntResult{}, toolError(err)
		}
		return textResult(strconv.FormatInt(value, 10)), IntResult{Value: value}, nil
	}
}

// FlipCoinHandler flips a coin. A single flip renders as the bare face.
func FlipCoinHandler(e *engine.Engine) mcp.ToolHandlerFor[FlipCoinInput, FlipCoinResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FlipCoinInput) (*mcp.CallToolResult, FlipCoinResult, error) {
		flips, err := e.FlipCoin(input.Count)
		if err != nil {
			return nil, FlipCoinResult{}, toolError(err)
		}

		result := FlipCoinResult{
			Flips: flips.Flips,
			Heads: flips.Heads,
			Tails: flips.Tails,
		}
		if input.Count == 1 {
			return textResult(result.Flips[0]), result, nil
		}
		text, err := renderJSON(result)
		if err != nil {
			return nil, FlipCoinResult{}, err
		}
		return textResult(text), result, nil
	}
}

// RollDiceHandler rolls dice. A single die renders as its bare value.
func RollDiceHandler(e *engine.Engine) mcp.ToolHandlerFor[RollDiceInput, RollDiceResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, RollDiceResult, error) {
		roll, err := e.RollDice(input.Sides, input.Count)
		if err != nil {
			return nil, RollDiceResult{}, toolError(err)
		}

		result := RollDiceResult{Rolls: roll.Rolls, Sum: roll.Sum}
		if input.Count == 1 {
			return textResult(strconv.Itoa(result.Rolls[0])), result, nil
		}
		text, err := renderJSON(result)
		if err != nil {
			return nil, RollDiceResult{}, err
		}
		return textResult(text), result, nil
	}
}
