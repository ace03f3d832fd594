package environmentmanager

import (
	"context"
	"errors"

	"github.com/steelcutops/gpuwatch/gpuwatch/gpumanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

// ErrNoPackageManager indicates none of the supported package managers is
// installed. There is no fallback install path, so this ends the run.
var ErrNoPackageManager = errors.New("no supported package manager found on this host")

// EnvironmentManager answers questions about what is installed on the host.
type EnvironmentManager interface {
	// ToolPresent reports whether the vendor's monitoring tool resolves on
	// the executable search path. Absence is not an error; only a failure
	// to perform the lookup itself is.
	ToolPresent(ctx context.Context, vendor gpumanager.Vendor) (bool, error)

	// DetectPackageManager probes the supported package managers in
	// priority order and returns the first one found.
	DetectPackageManager(ctx context.Context) (toolregistry.PackageManagerKind, error)
}
