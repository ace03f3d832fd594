package packagemanager

import (
	"context"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

type AptPackageManager struct {
	CommandManager cm.CommandManager
}

func (apm *AptPackageManager) AddPackage(ctx context.Context, pkg string) error {
	return installPackage(ctx, apm.CommandManager, toolregistry.Apt, pkg)
}
