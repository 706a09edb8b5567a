package cli

import (
	"errors"

	"github.com/maniartech/idgen/internal/id"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitError = 1 // runtime failure or an ID that did not inspect/validate
	ExitUsage = 2 // bad flags or parameters
)

// exitCode maps a generation error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var idErr *id.Error
	if errors.As(err, &idErr) && idErr.Kind.IsUsage() {
		return ExitUsage
	}
	return ExitError
}
