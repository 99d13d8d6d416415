package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceIsExclusive(t *testing.T) {
	name := "LuxTray-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable in this environment: %v", err)
	}
	defer func() { _ = guard.Release() }()

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestInstancePortInRange(t *testing.T) {
	for _, name := range []string{"", "LuxTray", "a much longer application name"} {
		port := instancePort(name)
		assert.GreaterOrEqual(t, port, instanceMinPort)
		assert.LessOrEqual(t, port, instanceMaxPort)
		assert.Equal(t, port, instancePort(name))
	}
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

type recordingService struct {
	enabled  []LaunchCommand
	disabled []string
	err      error
}

func (service *recordingService) GetConfigDir() (string, error) { return "", nil }

func (service *recordingService) EnableAutostart(appName string, launch LaunchCommand) error {
	service.enabled = append(service.enabled, launch)
	return service.err
}

func (service *recordingService) DisableAutostart(appName string) error {
	service.disabled = append(service.disabled, appName)
	return service.err
}

func TestApplyAutostart(t *testing.T) {
	service := &recordingService{}

	require.NoError(t, ApplyAutostart(service, "LuxTray", true, "--config", "/etc/luxtray.yaml"))
	require.NoError(t, ApplyAutostart(service, "LuxTray", false))

	require.Len(t, service.enabled, 1)
	launch := service.enabled[0]
	assert.NotEmpty(t, launch.Path)
	assert.Equal(t, []string{"--config", "/etc/luxtray.yaml"}, launch.Args)
	assert.Equal(t, []string{launch.Path, "--config", "/etc/luxtray.yaml"}, launch.Argv())
	assert.Equal(t, []string{"LuxTray"}, service.disabled)

	service.err = errors.New("denied")
	assert.Error(t, ApplyAutostart(service, "LuxTray", false))
}
