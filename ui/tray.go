// Package ui provides the graphical user interface for Redshift Tray.
// This file contains the system tray indicator functionality.
package ui

import (
	"fmt"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/store"
)

// TrayIndicator manages the system tray icon and menu.
type TrayIndicator struct {
	app        *Application
	statusItem *systray.MenuItem
	lastTemp   int
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{app: app}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetTitle(common.AppName)

	t.statusItem = systray.AddMenuItem("", fmt.Sprintf("%s v%s", common.AppName, t.app.version))
	t.statusItem.Disable()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Show", "Show the temperature and brightness sliders")
	go func() {
		for range showItem.ClickedCh {
			glib.IdleAdd(t.app.showPopup)
		}
	}()

	settingsItem := systray.AddMenuItem("Settings", "Temperature range and window position")
	go func() {
		for range settingsItem.ClickedCh {
			glib.IdleAdd(t.app.showSettings)
		}
	}()

	systray.AddSeparator()

	exitItem := systray.AddMenuItem("Exit", "Reset redshift and quit")
	go func() {
		for range exitItem.ClickedCh {
			glib.IdleAdd(t.app.Quit)
		}
	}()

	glib.IdleAdd(t.app.refreshTray)
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator cleanup completed")
}

// Update redraws the icon and texts for the given values.
// It must run on the GTK main loop.
func (t *TrayIndicator) Update(temp int, brightness float64) {
	if temp != t.lastTemp {
		systray.SetIcon(GenerateSunIcon(temp))
		t.lastTemp = temp
	}

	text := fmt.Sprintf("%dK, brightness %s", temp, store.FormatFloat(brightness))
	systray.SetTooltip(fmt.Sprintf("%s - %s", common.AppName, text))
	if t.statusItem != nil {
		t.statusItem.SetTitle(text)
	}
}
