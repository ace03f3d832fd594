package gpumanager

import (
	"context"
	"strings"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
)

type UnixGPUManager struct {
	CommandManager cm.CommandManager
}

// vendorChecks is ordered: a host exposing both an integrated and a
// discrete GPU resolves to whichever vendor appears earliest in this
// list, not earliest in the lspci output.
var vendorChecks = []struct {
	substring string
	vendor    Vendor
}{
	{"NVIDIA", Nvidia},
	{"AMD", Amd},
	{"Intel", Intel},
}

// IdentifyVendor runs a verbose PCI device listing and classifies the GPU
// vendor by substring match. A listing that cannot be obtained at all is an
// execution error, distinct from ErrUnsupportedGPU.
func (g *UnixGPUManager) IdentifyVendor(ctx context.Context) (Vendor, error) {
	output, err := g.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "lspci",
		Args:    []string{"-v"},
	})
	if err != nil {
		return 0, err
	}

	for _, check := range vendorChecks {
		if strings.Contains(output.STDOUT, check.substring) {
			return check.vendor, nil
		}
	}

	return 0, ErrUnsupportedGPU
}
