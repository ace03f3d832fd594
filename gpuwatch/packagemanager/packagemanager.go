package packagemanager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

// ErrInstallFailed indicates the package manager subprocess failed to run
// or exited non-zero. No alternate manager is attempted and nothing is
// retried; the host is left without the tool.
var ErrInstallFailed = errors.New("package installation failed")

// PackageManager installs packages on the host. Installing is the only
// operation in gpuwatch with a persistent, host-visible side effect.
type PackageManager interface {
	AddPackage(ctx context.Context, pkg string) error
}

// ForKind returns the package manager implementation for a detected kind.
func ForKind(kind toolregistry.PackageManagerKind, cmdManager cm.CommandManager) (PackageManager, error) {
	switch kind {
	case toolregistry.Apt:
		return &AptPackageManager{CommandManager: cmdManager}, nil
	case toolregistry.Pacman:
		return &PacmanPackageManager{CommandManager: cmdManager}, nil
	case toolregistry.Yum:
		return &YumPackageManager{CommandManager: cmdManager}, nil
	}
	return nil, fmt.Errorf("unsupported package manager kind: %s", kind)
}

// installPackage runs the manager's non-interactive install command as a
// single subprocess. Success is exit status 0 and nothing else.
func installPackage(ctx context.Context, cmdManager cm.CommandManager, kind toolregistry.PackageManagerKind, pkg string) error {
	spec, err := toolregistry.ManagerFor(kind)
	if err != nil {
		return err
	}

	output, err := cmdManager.Run(ctx, cm.CommandConfig{
		Command: spec.Binary,
		Args:    []string{spec.InstallVerb, spec.AssumeYesFlag, pkg},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	if output.ExitCode != 0 {
		return fmt.Errorf("%w: %s exited with status %d: %s",
			ErrInstallFailed, spec.Binary, output.ExitCode, strings.TrimSpace(output.STDERR))
	}
	return nil
}
