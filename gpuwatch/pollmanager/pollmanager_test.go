package pollmanager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/gpumanager"
	"github.com/steelcutops/gpuwatch/logger"
)

type MockCommandManager struct {
	mock.Mock
}

func (m *MockCommandManager) Run(ctx context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	args := m.Called(ctx, config)
	return args.Get(0).(cm.CommandResult), args.Error(1)
}

func testLogger() logger.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logger.New(l)
}

func nvidiaPollConfig() cm.CommandConfig {
	return cm.CommandConfig{
		Command: "nvidia-smi",
		Args:    []string{"--query-gpu=utilization.gpu", "--format=csv,noheader,nounits"},
	}
}

func TestRunWritesUtilizationLines(t *testing.T) {
	mockCM := new(MockCommandManager)
	mockCM.On("Run", mock.Anything, nvidiaPollConfig()).Return(cm.CommandResult{STDOUT: "42\n"}, nil).Once()
	mockCM.On("Run", mock.Anything, nvidiaPollConfig()).Return(cm.CommandResult{STDOUT: "43\n"}, nil).Once()
	mockCM.On("Run", mock.Anything, nvidiaPollConfig()).Return(cm.CommandResult{}, errors.New("failed to execute \"nvidia-smi\": not found"))

	var out bytes.Buffer
	poller := UtilizationPoller{
		CommandManager: mockCM,
		Logger:         testLogger(),
		Out:            &out,
		Interval:       time.Millisecond,
	}

	err := poller.Run(context.Background(), gpumanager.Nvidia)
	assert.NotNil(t, err)
	assert.Equal(t, "GPU Utilization: 42%\nGPU Utilization: 43%\n", out.String())
}

func TestRunStopsOnInvalidOutput(t *testing.T) {
	mockCM := new(MockCommandManager)
	mockCM.On("Run", mock.Anything, nvidiaPollConfig()).Return(cm.CommandResult{},
		fmt.Errorf("%q: %w", "nvidia-smi", cm.ErrInvalidOutput))

	var out bytes.Buffer
	poller := UtilizationPoller{
		CommandManager: mockCM,
		Logger:         testLogger(),
		Out:            &out,
		Interval:       time.Millisecond,
	}

	err := poller.Run(context.Background(), gpumanager.Nvidia)
	assert.ErrorIs(t, err, cm.ErrInvalidOutput)
	assert.Empty(t, out.String())
	mockCM.AssertNumberOfCalls(t, "Run", 1)
}

func TestRunStopsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	mockCM := new(MockCommandManager)
	mockCM.On("Run", mock.Anything, mock.Anything).Return(cm.CommandResult{STDOUT: "17\n"}, nil).Run(func(mock.Arguments) {
		cancel()
	})

	var out bytes.Buffer
	poller := UtilizationPoller{
		CommandManager: mockCM,
		Logger:         testLogger(),
		Out:            &out,
		Interval:       time.Millisecond,
	}

	err := poller.Run(ctx, gpumanager.Amd)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "GPU Utilization: 17%\n", out.String())
}
