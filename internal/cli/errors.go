package cli

import (
	"fmt"
)

// Error codes reported on stderr
const (
	CodeInvalidPeriod   = "INVALID_PERIOD"
	CodeLogNotFound     = "LOG_NOT_FOUND"
	CodeReadError       = "READ_ERROR"
	CodeWriteError      = "WRITE_ERROR"
	CodeConfigError     = "CONFIG_ERROR"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

// outputErrorCommon reports a fatal failure on stderr and returns it. Nothing
// is written to stdout so a failed run never emits a partial report.
func outputErrorCommon(globals *Globals, code, message string, hint ...string) error {
	cliErr := &CLIError{Code: code, Message: message}
	if len(hint) > 0 {
		cliErr.Hint = hint[0]
	}
	if globals != nil && globals.Stderr != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
		if cliErr.Hint != "" {
			fmt.Fprintf(globals.Stderr, "Hint: %s\n", cliErr.Hint)
		}
	}
	return cliErr
}
