// Package toolregistry holds the fixed mappings between GPU vendors, their
// utilization-reporting tools, and the package managers able to install
// them. Everything here is a pure lookup; nothing keeps state.
package toolregistry

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/steelcutops/gpuwatch/gpuwatch/gpumanager"
)

// ToolSpec describes the monitoring tool for one GPU vendor.
type ToolSpec struct {
	// Binary is the tool's executable name, used for search-path probes.
	Binary string
	// PollArgs are the arguments for one utilization sample.
	PollArgs []string
	// Package is the name to hand the package manager when the tool is
	// missing.
	Package string
}

// PackageManagerKind identifies one of the supported package manager
// families. It is determined at most once per run, and only when the
// monitoring tool is absent.
type PackageManagerKind int

const (
	Apt PackageManagerKind = iota
	Pacman
	Yum
)

func (k PackageManagerKind) String() string {
	switch k {
	case Apt:
		return "apt"
	case Pacman:
		return "pacman"
	case Yum:
		return "yum"
	}
	return "unknown"
}

// ManagerKinds lists every supported package manager in probe priority order.
func ManagerKinds() []PackageManagerKind {
	return []PackageManagerKind{Apt, Pacman, Yum}
}

// ManagerSpec describes how to drive one package manager non-interactively.
type ManagerSpec struct {
	Binary        string
	InstallVerb   string
	AssumeYesFlag string
}

var toolSpecs = map[gpumanager.Vendor]ToolSpec{
	gpumanager.Nvidia: {
		Binary:   "nvidia-smi",
		PollArgs: []string{"--query-gpu=utilization.gpu", "--format=csv,noheader,nounits"},
		Package:  "nvidia-smi",
	},
	gpumanager.Amd: {
		Binary:   "radeontop",
		PollArgs: []string{"-d", "-"},
		Package:  "radeontop",
	},
	gpumanager.Intel: {
		Binary:   "intel_gpu_top",
		PollArgs: []string{"-s", "1", "-o", "-"},
		Package:  "intel_gpu_top",
	},
}

var managerSpecs = map[PackageManagerKind]ManagerSpec{
	Apt:    {Binary: "apt", InstallVerb: "install", AssumeYesFlag: "-y"},
	Pacman: {Binary: "pacman", InstallVerb: "-S", AssumeYesFlag: "--noconfirm"},
	Yum:    {Binary: "yum", InstallVerb: "install", AssumeYesFlag: "-y"},
}

// ToolFor returns the monitoring tool spec for a vendor.
func ToolFor(vendor gpumanager.Vendor) (ToolSpec, error) {
	spec, ok := toolSpecs[vendor]
	if !ok {
		return ToolSpec{}, fmt.Errorf("no monitoring tool registered for vendor %s", vendor)
	}
	return spec, nil
}

// ManagerFor returns the install spec for a package manager kind.
func ManagerFor(kind PackageManagerKind) (ManagerSpec, error) {
	spec, ok := managerSpecs[kind]
	if !ok {
		return ManagerSpec{}, fmt.Errorf("no install spec registered for package manager %s", kind)
	}
	return spec, nil
}

// Validate checks the registry tables: every vendor and manager kind must
// have a complete spec, and no two vendors may share a tool binary. Run
// once at startup so a bad table aborts before any subprocess is spawned.
func Validate() error {
	var result *multierror.Error

	binaries := make(map[string]gpumanager.Vendor, len(toolSpecs))
	for _, vendor := range gpumanager.Vendors() {
		spec, ok := toolSpecs[vendor]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("vendor %s has no tool spec", vendor))
			continue
		}
		if spec.Binary == "" || spec.Package == "" || len(spec.PollArgs) == 0 {
			result = multierror.Append(result, fmt.Errorf("vendor %s has an incomplete tool spec", vendor))
		}
		if other, dup := binaries[spec.Binary]; dup {
			result = multierror.Append(result, fmt.Errorf("vendors %s and %s share tool binary %q", other, vendor, spec.Binary))
		}
		binaries[spec.Binary] = vendor
	}

	for _, kind := range ManagerKinds() {
		spec, ok := managerSpecs[kind]
		if !ok {
			result = multierror.Append(result, fmt.Errorf("package manager %s has no install spec", kind))
			continue
		}
		if spec.Binary == "" || spec.InstallVerb == "" || spec.AssumeYesFlag == "" {
			result = multierror.Append(result, fmt.Errorf("package manager %s has an incomplete install spec", kind))
		}
	}

	return result.ErrorOrNil()
}
