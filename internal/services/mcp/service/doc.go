// Package service wires protocol transport to the randomness tools.
//
// It is the transport adapter layer: the package knows how to run MCP over stdio
// or HTTP, registers the domain tools in named modules, and wraps every tool
// call with tracing, logging and unknown-tool handling.
package service
