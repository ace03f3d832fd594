package environmentmanager

import (
	"context"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/gpumanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

type UnixEnvironmentManager struct {
	CommandManager cm.CommandManager
}

func (e *UnixEnvironmentManager) ToolPresent(ctx context.Context, vendor gpumanager.Vendor) (bool, error) {
	spec, err := toolregistry.ToolFor(vendor)
	if err != nil {
		return false, err
	}
	return e.onPath(ctx, spec.Binary)
}

func (e *UnixEnvironmentManager) DetectPackageManager(ctx context.Context) (toolregistry.PackageManagerKind, error) {
	for _, kind := range toolregistry.ManagerKinds() {
		spec, err := toolregistry.ManagerFor(kind)
		if err != nil {
			return 0, err
		}
		found, err := e.onPath(ctx, spec.Binary)
		if err != nil {
			return 0, err
		}
		if found {
			return kind, nil
		}
	}
	return 0, ErrNoPackageManager
}

// onPath runs a which lookup for name. A non-zero exit means the binary is
// not on the search path; an error means the lookup itself could not run,
// and the caller must abort rather than guess.
func (e *UnixEnvironmentManager) onPath(ctx context.Context, name string) (bool, error) {
	output, err := e.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "which",
		Args:    []string{name},
	})
	if err != nil {
		return false, err
	}
	return output.ExitCode == 0, nil
}
