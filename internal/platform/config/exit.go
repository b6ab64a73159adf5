package config

import (
	"fmt"
	"io"
	"os"
)

// ProgramName prefixes fatal command-line messages.
const ProgramName = "mcp-random"

var (
	exitWriter io.Writer = os.Stderr
	exit                 = os.Exit
)

// Exitf reports a startup failure on stderr and exits with code 1. Stdout is
// left untouched because the stdio transport owns it.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitWriter, ProgramName+": "+format+"\n", args...)
	exit(1)
}
