package pollmanager

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/gpumanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
	"github.com/steelcutops/gpuwatch/logger"
)

// DefaultInterval is the fixed delay between utilization samples.
const DefaultInterval = time.Second

// UtilizationPoller repeatedly samples the vendor's monitoring tool and
// writes one utilization line per tick to Out. Each tick is one blocking
// subprocess call followed by one sleep; ticks never overlap and their
// outputs are not correlated.
type UtilizationPoller struct {
	CommandManager cm.CommandManager
	Logger         logger.Logger
	Out            io.Writer

	// Interval between ticks; DefaultInterval when zero.
	Interval time.Duration
}

// Run polls until ctx is canceled or a tick fails. There is no retry and
// no backoff: a tool that cannot be spawned or that emits non-text output
// ends the run.
func (p *UtilizationPoller) Run(ctx context.Context, vendor gpumanager.Vendor) error {
	spec, err := toolregistry.ToolFor(vendor)
	if err != nil {
		return err
	}

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	for {
		output, err := p.CommandManager.Run(ctx, cm.CommandConfig{
			Command: spec.Binary,
			Args:    spec.PollArgs,
		})
		if err != nil {
			return err
		}
		if output.ExitCode != 0 {
			p.Logger.Warn("Monitoring tool exited non-zero",
				"tool", spec.Binary, "exitCode", output.ExitCode)
		}

		if _, err := fmt.Fprintf(p.Out, "GPU Utilization: %s%%\n", strings.TrimSpace(output.STDOUT)); err != nil {
			return fmt.Errorf("writing utilization line: %w", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
