// Package gpuwatch wires the monitoring pipeline together: identify the GPU
// vendor, make sure its utilization tool is installed, then poll it forever.
package gpuwatch

import (
	"context"
	"io"
	"time"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/environmentmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/gpumanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/packagemanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/pollmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
	"github.com/steelcutops/gpuwatch/logger"
)

// Monitor runs the full vendor-detection, bootstrap and polling pipeline.
// Every failure is returned rather than terminating the process, so callers
// (and tests) decide what to do with it.
type Monitor struct {
	CommandManager cm.CommandManager
	Logger         logger.Logger
	Out            io.Writer

	// PollInterval overrides the poller's fixed 1-second interval; zero
	// means the default.
	PollInterval time.Duration
}

func (m *Monitor) Run(ctx context.Context) error {
	if err := toolregistry.Validate(); err != nil {
		return err
	}

	gpuManager := &gpumanager.UnixGPUManager{CommandManager: m.CommandManager}
	envManager := &environmentmanager.UnixEnvironmentManager{CommandManager: m.CommandManager}

	m.Logger.Info("Identifying GPU vendor")
	vendor, err := gpuManager.IdentifyVendor(ctx)
	if err != nil {
		return err
	}
	m.Logger.Info("GPU vendor identified", "vendor", vendor.String())

	spec, err := toolregistry.ToolFor(vendor)
	if err != nil {
		return err
	}

	m.Logger.Info("Checking for monitoring tool", "tool", spec.Binary)
	present, err := envManager.ToolPresent(ctx, vendor)
	if err != nil {
		return err
	}

	if present {
		m.Logger.Info("Monitoring tool already installed", "tool", spec.Binary)
	} else {
		m.Logger.Info("Monitoring tool missing, identifying package manager", "tool", spec.Binary)
		kind, err := envManager.DetectPackageManager(ctx)
		if err != nil {
			return err
		}
		m.Logger.Info("Package manager identified", "manager", kind.String())

		pkgManager, err := packagemanager.ForKind(kind, m.CommandManager)
		if err != nil {
			return err
		}

		m.Logger.Info("Installing monitoring tool", "package", spec.Package, "manager", kind.String())
		if err := pkgManager.AddPackage(ctx, spec.Package); err != nil {
			return err
		}
		m.Logger.Info("Monitoring tool installed", "package", spec.Package)
	}

	poller := &pollmanager.UtilizationPoller{
		CommandManager: m.CommandManager,
		Logger:         m.Logger,
		Out:            m.Out,
		Interval:       m.PollInterval,
	}

	m.Logger.Info("Starting utilization polling", "tool", spec.Binary)
	return poller.Run(ctx, vendor)
}
