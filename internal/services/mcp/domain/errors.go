package domain

// ToolError reports a failed operation back to the MCP client. The SDK
// places Error() in the tool result's text content with isError set.
type ToolError struct {
	Err error
}

func (e *ToolError) Error() string {
	return "Error: " + e.Err.Error()
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func toolError(err error) error {
	return &ToolError{Err: err}
}
