package redshift

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/redshift/redshifttest"
)

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		temp       int
		brightness float64
		want       []string
	}{
		{7000, 0.5, []string{"-x", "-P", "-O", "7000", "-b", "0.5"}},
		{5000, 1, []string{"-x", "-P", "-O", "5000", "-b", "1"}},
		{3400, 0.85, []string{"-x", "-P", "-O", "3400", "-b", "0.85"}},
	}

	for _, tt := range tests {
		t.Run(tt.want[3], func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyArgs(tt.temp, tt.brightness))
		})
	}
}

func TestProcess_ApplyUsesStoredValues(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, cfg.SetManualOverride(7000, 0.5))

	launcher := &redshifttest.Launcher{}
	proc := NewProcess(cfg, "", launcher)
	require.NoError(t, proc.Apply())

	call, ok := launcher.Last()
	require.True(t, ok)
	assert.Equal(t, "redshift -x -P -O 7000 -b 0.5", call.String())
}

func TestProcess_ApplyDefaults(t *testing.T) {
	launcher := &redshifttest.Launcher{}
	proc := NewProcess(newTestConfig(t), "/opt/redshift/bin/redshift", launcher)
	require.NoError(t, proc.Apply())

	call, _ := launcher.Last()
	assert.Equal(t, "/opt/redshift/bin/redshift", call.Name)
	assert.Equal(t, []string{"-x", "-P", "-O", "5000", "-b", "1"}, call.Args)
}

func TestProcess_Reset(t *testing.T) {
	launcher := &redshifttest.Launcher{}
	proc := NewProcess(newTestConfig(t), "", launcher)
	require.NoError(t, proc.Reset())

	call, _ := launcher.Last()
	assert.Equal(t, "redshift -x -P", call.String())
}

func TestProcess_ToolNotInstalled(t *testing.T) {
	launcher := &redshifttest.Launcher{Err: common.ErrToolNotInstalled}
	proc := NewProcess(newTestConfig(t), "", launcher)

	assert.True(t, errors.Is(proc.Apply(), common.ErrToolNotInstalled))
	assert.True(t, errors.Is(proc.Reset(), common.ErrToolNotInstalled))
}

func TestExecLauncher_MissingBinary(t *testing.T) {
	err := ExecLauncher{}.Launch("redshift-tray-test-no-such-binary", "-x")
	assert.True(t, errors.Is(err, common.ErrToolNotInstalled), "got %v", err)
}

func TestExecLauncher_MissingBinaryViaProcess(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	proc := NewProcess(newTestConfig(t), "", nil)
	assert.True(t, errors.Is(proc.Apply(), common.ErrToolNotInstalled))
}
