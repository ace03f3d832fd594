package commandmanager

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidOutput indicates a command produced stdout bytes that are not
// valid UTF-8. The captured bytes are unusable, so callers treat this as
// fatal rather than retrying.
var ErrInvalidOutput = errors.New("command output is not valid UTF-8")

// CommandConfig describes a single command invocation.
type CommandConfig struct {
	Command string
	Args    []string
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// CommandManager provides methods to execute commands on the local system.
//
// A non-zero exit status is not an error: it is reported through
// CommandResult.ExitCode so callers can interpret it (a failed `which`
// lookup simply means "not found"). Run returns an error only when the
// command could not be executed at all, or when its output is unusable
// (ErrInvalidOutput).
type CommandManager interface {
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)
}
