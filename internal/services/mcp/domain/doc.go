// Package domain translates MCP tool calls into randomness engine operations.
//
// Each tool has three parts kept side by side:
// - a *Tool constructor carrying the name, description and input schema,
// - typed Input/Result structs whose json and jsonschema tags define the wire shape,
// - a handler that calls the engine and renders a text payload.
//
// The handlers do no range checking of their own; the engine reports invalid
// input and the handler surfaces it as a tool error.
package domain
