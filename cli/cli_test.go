package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/redshift/redshifttest"
)

type result struct {
	code   int
	stdout string
	stderr string
}

type fixture struct {
	dir      string
	launcher *redshifttest.Launcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{
		dir:      t.TempDir(),
		launcher: &redshifttest.Launcher{},
	}
}

func (f *fixture) configPath() string   { return filepath.Join(f.dir, "redshift.conf") }
func (f *fixture) settingsPath() string { return filepath.Join(f.dir, "settings.yaml") }

func (f *fixture) deps() *Deps {
	return &Deps{
		Version:      "1.2.3",
		Launcher:     f.launcher,
		ConfigPath:   f.configPath(),
		SettingsPath: f.settingsPath(),
	}
}

func (f *fixture) run(t *testing.T, deps *Deps, args ...string) result {
	t.Helper()
	if deps == nil {
		deps = f.deps()
	}
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, deps, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func (f *fixture) lastCall(t *testing.T) string {
	t.Helper()
	call, ok := f.launcher.Last()
	require.True(t, ok, "redshift was not launched")
	return call.String()
}

func (f *fixture) readConfig(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.configPath())
	require.NoError(t, err)
	return string(data)
}

func TestVersion(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "--version")

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "Redshift Tray v1.2.3\n", res.stdout)
}

func TestStatus_Defaults(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "status")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "FILE")
	assert.Regexp(t, `redshift\.conf\s+temp-day\s+5000\s+default`, res.stdout)
	assert.Regexp(t, `settings\.yaml\s+temperature_max\s+6500\s+default`, res.stdout)
	assert.Contains(t, res.stdout, "Window position: Center")
	assert.Empty(t, f.launcher.Calls())
}

func TestStatus_StoredValues(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.configPath(), []byte("[redshift]\ntemp-day=4100\n"), 0644))

	res := f.run(t, nil, "status")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Regexp(t, `temp-day\s+4100\s+stored`, res.stdout)
}

func TestSet(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "set", "--temperature", "7000", "--brightness", "0.5")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Applied 7000K, brightness 0.5")
	assert.Equal(t, "redshift -x -P -O 7000 -b 0.5", f.lastCall(t))

	content := f.readConfig(t)
	for _, line := range []string{"temp-day=7000", "temp-night=7000", "brightness=0.5", "brightness-day=0.5", "brightness-night=0.5", "transition=0"} {
		assert.Contains(t, content, line)
	}
}

func TestSet_KeepsUnsetValues(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.configPath(), []byte("[redshift]\ntemp-day=4300\nbrightness=0.9\n"), 0644))

	res := f.run(t, nil, "set", "-b", "0.7")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "redshift -x -P -O 4300 -b 0.7", f.lastCall(t))
}

func TestSet_InvalidValue(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "set", "-t", "500")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error:")
	assert.Empty(t, f.launcher.Calls())
	assert.False(t, common.FileExists(f.configPath()))
}

func TestSet_RedshiftFlag(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "--redshift-bin", "/usr/local/bin/redshift", "set", "-t", "5200")

	require.Equal(t, 0, res.code, res.stderr)
	call, _ := f.launcher.Last()
	assert.Equal(t, "/usr/local/bin/redshift", call.Name)
}

func TestBounds_ClampsTemperature(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, 0, f.run(t, nil, "set", "-t", "7000", "-b", "0.5").code)
	f.launcher.Reset()

	res := f.run(t, nil, "bounds", "--min", "5000", "--max", "6000")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Range 5000-6000K")
	assert.Contains(t, res.stdout, "clamped from 7000K to 6000K")
	assert.Equal(t, "redshift -x -P -O 6000 -b 0.5", f.lastCall(t))
	assert.Contains(t, f.readConfig(t), "temp-day=6000")
}

func TestBounds_InRangeDoesNotApply(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "bounds", "--min", "4000", "--max", "6000", "--position", "top-right")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "position Top right")
	assert.NotContains(t, res.stdout, "clamped")
	assert.Empty(t, f.launcher.Calls())

	data, err := os.ReadFile(f.settingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "window_position: 2")
}

func TestBounds_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"inverted", []string{"bounds", "--min", "6000", "--max", "5000"}},
		{"bad position", []string{"bounds", "--position", "middle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res := f.run(t, nil, tt.args...)
			assert.Equal(t, 1, res.code)
			assert.False(t, common.FileExists(f.settingsPath()))
		})
	}
}

func TestApply(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.configPath(), []byte("[redshift]\ntemp-day=3800\nbrightness=0.6\n"), 0644))

	res := f.run(t, nil, "apply")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "redshift -x -P -O 3800 -b 0.6", f.lastCall(t))
}

func TestApply_ToolNotInstalled(t *testing.T) {
	f := newFixture(t)
	f.launcher.Err = common.ErrToolNotInstalled

	res := f.run(t, nil, "apply")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "redshift is not installed")
}

func TestReset(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "reset")

	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "redshift -x -P", f.lastCall(t))
}

func TestTUI_RequiresTerminal(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil, "tui")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, ErrNotTerminal.Error())
	assert.Empty(t, f.launcher.Calls())
}

func TestRoot_RunsGUI(t *testing.T) {
	f := newFixture(t)
	deps := f.deps()

	var got *controller.Controller
	deps.RunGUI = func(ctx context.Context, ctrl *controller.Controller) int {
		got = ctrl
		return 1
	}

	res := f.run(t, deps)
	assert.Equal(t, 1, res.code)
	require.NotNil(t, got)
	assert.Equal(t, f.configPath(), got.Tool().Path())
	assert.Equal(t, f.settingsPath(), got.Settings().Path())
}

func TestRoot_WithoutGUI(t *testing.T) {
	f := newFixture(t)
	res := f.run(t, nil)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not available")
}
