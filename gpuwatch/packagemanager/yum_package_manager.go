package packagemanager

import (
	"context"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

type YumPackageManager struct {
	CommandManager cm.CommandManager
}

func (ypm *YumPackageManager) AddPackage(ctx context.Context, pkg string) error {
	return installPackage(ctx, ypm.CommandManager, toolregistry.Yum, pkg)
}
