package packagemanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cm "github.com/steelcutops/gpuwatch/gpuwatch/commandmanager"
	"github.com/steelcutops/gpuwatch/gpuwatch/toolregistry"
)

type MockCommandManager struct {
	mock.Mock
}

func (m *MockCommandManager) Run(ctx context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	args := m.Called(ctx, config)
	return args.Get(0).(cm.CommandResult), args.Error(1)
}

func TestAddPackageInvocations(t *testing.T) {
	tests := []struct {
		name string
		kind toolregistry.PackageManagerKind
		want cm.CommandConfig
	}{
		{"apt", toolregistry.Apt, cm.CommandConfig{Command: "apt", Args: []string{"install", "-y", "radeontop"}}},
		{"pacman", toolregistry.Pacman, cm.CommandConfig{Command: "pacman", Args: []string{"-S", "--noconfirm", "radeontop"}}},
		{"yum", toolregistry.Yum, cm.CommandConfig{Command: "yum", Args: []string{"install", "-y", "radeontop"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCM := new(MockCommandManager)
			mockCM.On("Run", mock.Anything, tt.want).Return(cm.CommandResult{ExitCode: 0}, nil)

			manager, err := ForKind(tt.kind, mockCM)
			assert.Nil(t, err)

			err = manager.AddPackage(context.Background(), "radeontop")
			assert.Nil(t, err)
			mockCM.AssertExpectations(t)
		})
	}
}

func TestAddPackageNonZeroExit(t *testing.T) {
	mockCM := new(MockCommandManager)
	mockCM.On("Run", mock.Anything, mock.Anything).Return(cm.CommandResult{
		ExitCode: 100,
		STDERR:   "E: Unable to locate package radeontop",
	}, nil)

	manager := AptPackageManager{CommandManager: mockCM}
	err := manager.AddPackage(context.Background(), "radeontop")
	assert.ErrorIs(t, err, ErrInstallFailed)
}

func TestAddPackageSpawnFailure(t *testing.T) {
	mockCM := new(MockCommandManager)
	mockCM.On("Run", mock.Anything, mock.Anything).Return(cm.CommandResult{}, errors.New("failed to execute \"yum\": not found"))

	manager := YumPackageManager{CommandManager: mockCM}
	err := manager.AddPackage(context.Background(), "nvidia-smi")
	assert.ErrorIs(t, err, ErrInstallFailed)
}

func TestForKindCoversAllKinds(t *testing.T) {
	mockCM := new(MockCommandManager)
	for _, kind := range toolregistry.ManagerKinds() {
		manager, err := ForKind(kind, mockCM)
		assert.Nil(t, err, "kind %s", kind)
		assert.NotNil(t, manager, "kind %s", kind)
	}
}
