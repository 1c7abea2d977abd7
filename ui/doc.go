// Package ui provides the graphical user interface for Redshift Tray.
//
// This package implements the GTK4-based user interface including:
//
//   - A popup window with temperature and brightness sliders
//   - System tray indicator with Show, Settings and Exit
//   - Settings dialog for the slider range and popup position
//   - Desktop notifications
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings and fyne.io/systray.
// Every edit is forwarded to a controller.Controller, which persists the
// values and commands redshift. Key components:
//
//   - Application: GTK application lifecycle and startup checks
//   - Popup: the slider window; hides on close or when it loses focus
//   - SettingsDialog: modal bounds and position editor
//   - TrayIndicator: tray icon drawn from the active temperature
//
// # Startup
//
// The stored override is applied before any window exists. If redshift is
// not installed the application shows a blocking error and exits with
// status 1 without creating the popup, the dialog or the tray icon.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Tray menu clicks and
// config file watcher events arrive on other goroutines and are scheduled
// with glib.IdleAdd().
//
// # File Organization
//
//   - app.go: Application lifecycle, error dialogs, quit
//   - popup.go: Slider popup
//   - settings_dialog.go: Settings dialog
//   - tray.go: System tray indicator
//   - icons.go: Icon generation for tray
//   - styles.go: CSS styling
//   - notifications.go: Desktop notification integration
package ui
