// Package errors provides the structured error taxonomy shared by the
// randomness engine and the MCP boundary.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an error that carries no code.
	CodeUnknown Code = "UNKNOWN"

	// Input validation errors
	CodeInvalidBound     Code = "INVALID_BOUND"
	CodeInvalidCount     Code = "INVALID_COUNT"
	CodeInvalidShape     Code = "INVALID_SHAPE"
	CodeInvalidWeight    Code = "INVALID_WEIGHT"
	CodeEmptyAlphabet    Code = "EMPTY_ALPHABET"
	CodeInvalidArguments Code = "INVALID_ARGUMENTS" // rejected by the tool's input schema

	// Routing errors
	CodeUnknownOperation Code = "UNKNOWN_OPERATION"

	// Platform errors
	CodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"
)

// Fatal reports whether an error with this code must stop the process
// instead of being reported back to the caller.
func (c Code) Fatal() bool {
	return c == CodeEntropyUnavailable
}

// Recoverable reports whether the code describes a deterministic input error.
// Retrying a call that failed with a recoverable code yields the same error.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInvalidBound,
		CodeInvalidCount,
		CodeInvalidShape,
		CodeInvalidWeight,
		CodeEmptyAlphabet,
		CodeInvalidArguments,
		CodeUnknownOperation:
		return true
	default:
		return false
	}
}
