// Package tui is a terminal front-end with the same sliders as the tray
// popup. It runs every edit through a controller.Controller inside
// bubbletea's Update, so it follows the same persist-then-apply rules.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/store"
)

type slider int

const (
	sliderTemperature slider = iota
	sliderBrightness
)

const (
	barWidth             = 32
	minBrightnessPercent = int(common.MinBrightness * 100)
	maxBrightnessPercent = int(common.MaxBrightness * 100)
)

// Model is the bubbletea model of the slider panel.
type Model struct {
	ctrl    *controller.Controller
	keys    keyMap
	help    help.Model
	bar     progress.Model
	focus   slider
	min     int
	max     int
	temp    int
	percent int
	width   int
	height  int
	status  string
	err     error
	fatal   error
}

// New creates the model from the controller's stored state. The
// controller's stores must already be loaded.
func New(ctrl *controller.Controller) Model {
	m := Model{
		ctrl: ctrl,
		keys: defaultKeyMap(),
		help: help.New(),
		bar: progress.New(
			progress.WithScaledGradient("#FF7A00", "#CFE4FF"),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
		),
	}
	m.load()
	return m
}

// load copies the slider state from the controller.
func (m *Model) load() {
	state := m.ctrl.SliderState()
	m.min, m.max = state.Min, state.Max
	m.temp = state.Temperature
	m.percent = brightnessPercent(state.Brightness)
}

func brightnessPercent(b float64) int {
	p := int(b*100 + 0.5)
	return controller.Clamp(p, minBrightnessPercent, maxBrightnessPercent)
}

// Temperature returns the temperature slider value in Kelvin.
func (m Model) Temperature() int {
	return m.temp
}

// Brightness returns the brightness slider value as a ratio.
func (m Model) Brightness() float64 {
	return float64(m.percent) / 100
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.fatal
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			if m.focus == sliderTemperature {
				m.focus = sliderBrightness
			} else {
				m.focus = sliderTemperature
			}
		case key.Matches(msg, m.keys.Decrease):
			m.step(-1)
		case key.Matches(msg, m.keys.Increase):
			m.step(1)
		case key.Matches(msg, m.keys.Apply):
			return m.apply()
		case key.Matches(msg, m.keys.Reload):
			if err := m.ctrl.Reload(); err != nil {
				m.err, m.status = err, ""
			} else {
				m.load()
				m.err, m.status = nil, "Reloaded redshift.conf"
			}
		}
	}
	return m, nil
}

// step moves the focused slider by one increment within its range.
func (m *Model) step(dir int) {
	switch m.focus {
	case sliderTemperature:
		m.temp = controller.Clamp(m.temp+dir*common.TemperatureStep, m.min, m.max)
	case sliderBrightness:
		m.percent = controller.Clamp(m.percent+dir*common.BrightnessStepPercent,
			minBrightnessPercent, maxBrightnessPercent)
	}
}

func (m Model) apply() (tea.Model, tea.Cmd) {
	err := m.ctrl.ApplyOverride(m.temp, m.Brightness())
	switch {
	case err == nil:
		m.err = nil
		m.status = fmt.Sprintf("Applied %dK, brightness %s", m.temp, store.FormatFloat(m.Brightness()))
	case errors.Is(err, common.ErrToolNotInstalled):
		m.fatal = err
		return m, tea.Quit
	default:
		m.err, m.status = err, ""
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	tool := m.ctrl.Tool()

	var b strings.Builder
	b.WriteString(titleStyle.Render(common.AppName))
	b.WriteString("\n\n")

	b.WriteString(m.row(sliderTemperature,
		fmt.Sprintf("Color temperature (%d)", tool.DayTemperature()),
		fmt.Sprintf("%d K", m.temp),
		fraction(m.temp-m.min, m.max-m.min)))
	b.WriteString("\n")
	b.WriteString(m.row(sliderBrightness,
		fmt.Sprintf("Brightness (%s)", store.FormatFloat(tool.Brightness())),
		store.FormatFloat(m.Brightness()),
		fraction(m.percent-minBrightnessPercent, maxBrightnessPercent-minBrightnessPercent)))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	panel := panelStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return panel
	}

	h, v := m.ctrl.Settings().WindowPosition().Anchor()
	return lipgloss.Place(m.width, m.height, lipgloss.Position(h), lipgloss.Position(v), panel)
}

func (m Model) row(s slider, label, value string, percent float64) string {
	style := labelStyle
	marker := "  "
	if m.focus == s {
		style = focusedLabelStyle
		marker = "▸ "
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		marker+style.Render(label),
		m.bar.ViewAs(percent),
		valueStyle.Render(value),
	)
}

// fraction returns n/d, or 1 for an empty range.
func fraction(n, d int) float64 {
	if d <= 0 {
		return 1
	}
	return float64(n) / float64(d)
}
