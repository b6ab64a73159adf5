package domain

import (
	"context"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PasswordInput represents the MCP tool input for password generation.
type PasswordInput struct {
	Length         int  `json:"length,omitempty" jsonschema:"password length"`
	Uppercase      bool `json:"uppercase,omitempty" jsonschema:"include uppercase letters"`
	Lowercase      bool `json:"lowercase,omitempty" jsonschema:"include lowercase letters"`
	Numbers        bool `json:"numbers,omitempty" jsonschema:"include digits"`
	Symbols        bool `json:"symbols,omitempty" jsonschema:"include symbols"`
	ExcludeSimilar bool `json:"exclude_similar,omitempty" jsonschema:"exclude look-alike characters such as I, l, O, 0 and 1"`
}

// PasswordResult represents the MCP tool output for password generation.
type PasswordResult struct {
	Password string `json:"password" jsonschema:"generated password"`
}

// BytesInput represents the MCP tool input for random bytes.
type BytesInput struct {
	Count    int    `json:"count,omitempty" jsonschema:"number of bytes"`
	Encoding string `json:"encoding,omitempty" jsonschema:"output encoding: hex, base64 or base64url"`
}

// BytesResult represents the MCP tool output for random bytes.
type BytesResult struct {
	Value    string `json:"value" jsonschema:"encoded bytes"`
	Encoding string `json:"encoding" jsonschema:"encoding applied"`
	Count    int    `json:"count" jsonschema:"number of bytes drawn"`
}

// UUIDInput represents the MCP tool input for a UUID.
type UUIDInput struct{}

// UUIDResult represents the MCP tool output for a UUID.
type UUIDResult struct {
	UUID string `json:"uuid" jsonschema:"version 4 UUID"`
}

// PasswordTool defines the MCP tool schema for password generation.
func PasswordTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_password",
		Description: "Generates a cryptographically secure password from the selected character classes",
		InputSchema: inputSchema[PasswordInput](map[string]any{
			"length":          16,
			"uppercase":       true,
			"lowercase":       true,
			"numbers":         true,
			"symbols":         true,
			"exclude_similar": false,
		}),
		Annotations: readOnly("Random password"),
	}
}

// BytesTool defines the MCP tool schema for random bytes.
func BytesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_bytes",
		Description: "Generates cryptographically secure random bytes in hex, base64 or base64url",
		InputSchema: inputSchema[BytesInput](map[string]any{
			"count":    32,
			"encoding": string(engine.EncodingHex),
		}),
		Annotations: readOnly("Random bytes"),
	}
}

// UUIDTool defines the MCP tool schema for UUIDs.
func UUIDTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "random_uuid",
		Description: "Generates a random version 4 UUID",
		InputSchema: inputSchema[UUIDInput](nil),
		Annotations: readOnly("Random UUID"),
	}
}

// PasswordHandler generates a password.
func PasswordHandler(e *engine.Engine) mcp.ToolHandlerFor[PasswordInput, PasswordResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PasswordInput) (*mcp.CallToolResult, PasswordResult, error) {
		password, err := e.Password(engine.PasswordRequest{
			Length:         input.Length,
			Uppercase:      input.Uppercase,
			Lowercase:      input.Lowercase,
			Numbers:        input.Numbers,
			Symbols:        input.Symbols,
			ExcludeSimilar: input.ExcludeSimilar,
		})
		if err != nil {
			return nil, PasswordResult{}, toolError(err)
		}
		return textResult(password), PasswordResult{Password: password}, nil
	}
}

// BytesHandler draws encoded random bytes.
func BytesHandler(e *engine.Engine) mcp.ToolHandlerFor[BytesInput, BytesResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input BytesInput) (*mcp.CallToolResult, BytesResult, error) {
		value, encoding, err := e.Bytes(input.Count, input.Encoding)
		if err != nil {
			return nil, BytesResult{}, toolError(err)
		}
		return textResult(value), BytesResult{
			Value:    value,
			Encoding: string(encoding),
			Count:    input.Count,
		}, nil
	}
}

// UUIDHandler generates a UUID.
func UUIDHandler(e *engine.Engine) mcp.ToolHandlerFor[UUIDInput, UUIDResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ UUIDInput) (*mcp.CallToolResult, UUIDResult, error) {
		id, err := e.UUID()
		if err != nil {
			return nil, UUIDResult{}, toolError(err)
		}
		return textResult(id), UUIDResult{UUID: id}, nil
	}
}
