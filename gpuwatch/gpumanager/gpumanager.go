package gpumanager

import (
	"context"
	"errors"
)

// Vendor identifies the GPU manufacturer installed on the host. It is
// determined once at startup and threaded through the rest of the run.
type Vendor int

const (
	Nvidia Vendor = iota
	Amd
	Intel
)

func (v Vendor) String() string {
	switch v {
	case Nvidia:
		return "NVIDIA"
	case Amd:
		return "AMD"
	case Intel:
		return "Intel"
	}
	return "unknown"
}

// Vendors lists every supported vendor in detection priority order.
func Vendors() []Vendor {
	return []Vendor{Nvidia, Amd, Intel}
}

// ErrUnsupportedGPU indicates the PCI device listing contained no
// recognizable GPU vendor.
var ErrUnsupportedGPU = errors.New("no supported GPU vendor found on this host")

// GPUManager classifies the GPU hardware present on a host.
type GPUManager interface {
	IdentifyVendor(ctx context.Context) (Vendor, error)
}
