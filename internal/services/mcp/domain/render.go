package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult wraps a rendered payload as the tool's text content.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// renderValue renders strings as-is and everything else as JSON.
func renderValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return renderJSON(value)
}

func renderJSON(value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("render result: %w", err)
	}
	return string(data), nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
