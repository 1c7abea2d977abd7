// Package ui provides the graphical user interface for Redshift Tray.
// This file places the popup at the configured screen position.
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/config"
)

const xdotoolName = "xdotool"

// isX11Session reports whether windows can be moved by the client.
// Wayland compositors place toplevels themselves.
func isX11Session() bool {
	return os.Getenv("DISPLAY") != "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

// xdotoolArgs returns the arguments that move the window titled title
// to (x, y) once it is mapped.
func xdotoolArgs(title string, x, y int) []string {
	return []string{
		"search", "--sync", "--limit", "1", "--name", "^" + regexp.QuoteMeta(title) + "$",
		"windowmove", "%1", strconv.Itoa(x), strconv.Itoa(y),
	}
}

// placePopup moves window to pos on its monitor. GTK4 cannot position
// toplevels, so this works through xdotool on X11 and is skipped
// elsewhere.
func placePopup(window *gtk.ApplicationWindow, pos config.WindowPosition) {
	if !isX11Session() {
		common.LogDebug("Popup position %s left to the compositor", pos)
		return
	}

	display := gdk.DisplayGetDefault()
	surface := window.Surface()
	if display == nil || surface == nil {
		return
	}
	monitor := display.MonitorAtSurface(surface)
	if monitor == nil {
		return
	}
	area := monitor.Geometry()

	w, h := window.Width(), window.Height()
	if w <= 0 {
		w = common.PopupWidth
	}
	x, y := pos.Origin(area.X(), area.Y(), area.Width(), area.Height(), w, h)

	if err := moveX11Window(window.Title(), x, y); err != nil {
		common.LogDebug("Could not move popup to %s: %v", pos, err)
	}
}

func moveX11Window(title string, x, y int) error {
	path, err := exec.LookPath(xdotoolName)
	if err != nil {
		return fmt.Errorf("%s not found: %w", xdotoolName, err)
	}

	cmd := exec.Command(path, xdotoolArgs(title, x, y)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
