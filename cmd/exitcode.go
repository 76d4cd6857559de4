package cmd

import (
	"errors"

	"github.com/strongdm/colorize/internal/style"
)

// Exit code constants for colorize commands.
const (
	ExitOK             = 0 // All records written
	ExitUndefinedStyle = 1 // A record's level has no registered style
	ExitError          = 2 // Bad flags, unreadable input, malformed records
)

// ExitCodeFor maps an error from a command to its exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, style.ErrUndefinedStyle):
		return ExitUndefinedStyle
	default:
		return ExitError
	}
}
