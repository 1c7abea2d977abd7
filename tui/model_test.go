package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/config"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/redshift"
	"github.com/yllada/redshift-tray/redshift/redshifttest"
)

func newTestModel(t *testing.T) (Model, *redshifttest.Launcher, *redshift.Config) {
	t.Helper()
	dir := t.TempDir()
	tool := redshift.NewConfig(filepath.Join(dir, "redshift.conf"))
	settings := config.NewSettings(filepath.Join(dir, "settings.yaml"))
	launcher := &redshifttest.Launcher{}
	ctrl := controller.New(tool, settings, redshift.NewProcess(tool, "", launcher))
	require.NoError(t, ctrl.Startup())
	launcher.Reset()
	return New(ctrl), launcher, tool
}

func send(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestModel_InitialState(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Stored 5000K lies inside the default 4500-6500 range.
	assert.Equal(t, 5000, m.Temperature())
	assert.Equal(t, 1.0, m.Brightness())
	assert.Nil(t, m.Init())
}

func TestModel_AdjustStaysInRange(t *testing.T) {
	m, launcher, _ := newTestModel(t)

	m, _ = send(t, m, keyRight, keyRight)
	assert.Equal(t, 5200, m.Temperature())

	for i := 0; i < 40; i++ {
		m, _ = send(t, m, keyRight)
	}
	assert.Equal(t, 6500, m.Temperature())

	m, _ = send(t, m, keyTab, keyLeft, keyLeft)
	assert.Equal(t, 0.9, m.Brightness())

	for i := 0; i < 40; i++ {
		m, _ = send(t, m, keyLeft)
	}
	assert.Equal(t, 0.1, m.Brightness())

	assert.Empty(t, launcher.Calls(), "moving sliders must not apply")
}

func TestModel_ApplyRunsOverride(t *testing.T) {
	m, launcher, tool := newTestModel(t)

	m, _ = send(t, m, keyLeft, keyLeft, keyTab, keyLeft)
	m, cmd := send(t, m, keyEnter)
	assert.Nil(t, cmd)

	assert.Equal(t, 4800, tool.DayTemperature())
	assert.Equal(t, 4800, tool.NightTemperature())
	assert.Equal(t, 0.95, tool.Brightness())

	call, ok := launcher.Last()
	require.True(t, ok)
	assert.Equal(t, "redshift -x -P -O 4800 -b 0.95", call.String())
	assert.Contains(t, m.View(), "Applied 4800K")
}

func TestModel_ToolNotInstalledQuits(t *testing.T) {
	m, launcher, _ := newTestModel(t)
	launcher.Err = common.ErrToolNotInstalled

	m, cmd := send(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, errors.Is(m.Err(), common.ErrToolNotInstalled))
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := send(t, m, keyQuit)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewShowsStoredValues(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Color temperature (5000)")
	assert.Contains(t, view, "Brightness (1)")
	assert.Contains(t, view, "5000 K")
}

func TestModel_ViewPlacement(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.NoError(t, m.ctrl.Settings().SetWindowPosition(config.PositionTopLeft))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(Model).View()

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 40)
	assert.True(t, strings.HasPrefix(lines[0], "╭"), "top-left placement starts at the first column")
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.5, fraction(1, 2))
	assert.Equal(t, 1.0, fraction(0, 0))
}
