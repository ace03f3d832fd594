package packagemanager

import (
	"context"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

type PacmanPackageManager struct {
	CommandManager cm.CommandManager
}

func (ppm *PacmanPackageManager) AddPackage(ctx context.Context, pkg string) error {
	return installPackage(ctx, ppm.CommandManager, toolregistry.Pacman, pkg)
}
