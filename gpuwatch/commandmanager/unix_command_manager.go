package commandmanager

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"
)

// UnixCommandManager executes commands on the local system.
type UnixCommandManager struct{}

func (u *UnixCommandManager) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	start := time.Now()

	slog.Debug("Executing local command", "command", config.Command, "args", config.Args)

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Command:   config.Command,
		STDOUT:    stdout.String(),
		STDERR:    stderr.String(),
		ExitCode:  getExitCode(err),
		Duration:  time.Since(start),
		Timestamp: start,
	}

	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			// The command never ran: binary missing, permission denied,
			// or the context was canceled mid-flight.
			return result, fmt.Errorf("failed to execute %q: %w", config.Command, err)
		}
	}

	if !utf8.ValidString(result.STDOUT) {
		return result, fmt.Errorf("%q: %w", config.Command, ErrInvalidOutput)
	}

	return result, nil
}

func getExitCode(err error) int {
	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			status := exitError.Sys().(syscall.WaitStatus)
			return status.ExitStatus()
		}
	}
	return 0
}
