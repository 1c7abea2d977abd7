package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/redshift"
)

// Application represents the main application
type Application struct {
	app         *gtk.Application
	ctrl        *controller.Controller
	notifier    common.Notifier
	version     string
	popup       *Popup
	settings    *SettingsDialog
	tray        *TrayIndicator
	watcher     *redshift.Watcher
	stopWatcher context.CancelFunc
	exitCode    int
	quitting    bool
}

// NewApplication creates a new application around a controller whose
// stores have not been loaded yet. A nil notifier means desktop
// notifications.
func NewApplication(appID, version string, ctrl *controller.Controller, notifier common.Notifier) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)
	if notifier == nil {
		notifier = DesktopNotifier{}
	}

	application := &Application{
		app:      app,
		ctrl:     ctrl,
		notifier: notifier,
		version:  version,
	}

	app.ConnectActivate(application.onActivate)

	return application
}

// Run runs the application and returns its exit status.
func (a *Application) Run(args []string) int {
	code := a.app.Run(args)
	if a.exitCode != 0 {
		return a.exitCode
	}
	return code
}

// onActivate is called when the application is activated. A second
// activation only shows the popup.
func (a *Application) onActivate() {
	if a.popup != nil {
		a.showPopup()
		return
	}

	LoadStyles()
	a.setupAppIcon()

	if err := a.ctrl.Startup(); err != nil {
		if errors.Is(err, common.ErrToolNotInstalled) {
			common.LogError("Startup failed: %v", err)
			a.fatal("redshift not found",
				"Redshift Tray needs the redshift program. Install redshift and start the tray again.")
			return
		}
		common.LogWarn("Startup apply failed: %v", err)
		a.notify(common.AppName, err.Error(), iconWarning)
	}

	// The popup starts hidden; keep running in the tray.
	a.app.Hold()

	a.popup = NewPopup(a)
	a.settings = NewSettingsDialog(a)

	a.tray = NewTrayIndicator(a)
	go a.tray.Run()

	a.startWatcher()
}

// setupAppIcon lets windows use the redshift icon from the theme or from
// an assets directory shipped next to the binary.
func (a *Application) setupAppIcon() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	iconTheme := gtk.IconThemeGetForDisplay(display)
	if iconTheme == nil {
		return
	}

	if execPath, err := os.Executable(); err == nil {
		iconTheme.AddSearchPath(filepath.Join(filepath.Dir(execPath), "assets", "icons"))
	}

	gtk.WindowSetDefaultIconName(common.ToolName)
}

// startWatcher reloads redshift.conf when it is edited elsewhere.
func (a *Application) startWatcher() {
	w, err := redshift.NewWatcher(a.ctrl.Tool().Path(), func() {
		glib.IdleAdd(a.onToolConfigChanged)
	})
	if err != nil {
		common.LogWarn("Not watching %s: %v", a.ctrl.Tool().Path(), err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.watcher = w
	a.stopWatcher = cancel
	go w.Run(ctx)
}

func (a *Application) onToolConfigChanged() {
	if err := a.ctrl.Reload(); err != nil {
		common.LogWarn("Could not reload %s: %v", a.ctrl.Tool().Path(), err)
		return
	}
	if a.popup != nil {
		a.popup.Refresh()
	}
	a.refreshTray()
}

// showPopup shows the slider popup.
func (a *Application) showPopup() {
	if a.popup != nil {
		a.popup.Show()
	}
}

// showSettings shows the settings dialog on top of the popup.
func (a *Application) showSettings() {
	if a.settings == nil {
		return
	}
	if a.popup != nil && a.popup.window.IsVisible() {
		a.settings.window.SetTransientFor(&a.popup.window.Window)
	} else {
		a.settings.window.SetTransientFor(nil)
	}
	a.settings.Show()
}

// refreshTray redraws the tray icon from the stored values.
func (a *Application) refreshTray() {
	if a.tray == nil {
		return
	}
	tool := a.ctrl.Tool()
	a.tray.Update(tool.DayTemperature(), tool.Brightness())
}

// handleApplyError reports a failed edit. A missing redshift binary ends
// the application.
func (a *Application) handleApplyError(err error) {
	switch {
	case err == nil:
	case errors.Is(err, common.ErrToolNotInstalled):
		common.LogError("%v", err)
		a.fatal("redshift not found", "The redshift program is no longer available. Redshift Tray will exit.")
	case errors.Is(err, common.ErrConfigSave):
		a.notify("Settings not saved", err.Error(), iconWarning)
	default:
		common.LogError("%v", err)
		a.notify(common.AppName, err.Error(), iconError)
	}
}

func (a *Application) notify(title, message, icon string) {
	if err := a.notifier.NotifyWithIcon(title, message, icon); err != nil {
		common.LogWarn("Notification failed: %v", err)
	}
}

// fatal shows a blocking error and quits with status 1 once it is closed.
func (a *Application) fatal(title, message string) {
	a.exitCode = 1
	a.showError(nil, title, message, a.Quit)
}

// showError displays an error dialog. onClose, if set, runs after the
// dialog is dismissed.
func (a *Application) showError(parent *gtk.Window, title, message string, onClose func()) {
	window := gtk.NewWindow()
	window.SetApplication(a.app)
	window.SetTitle(title)
	if parent != nil {
		window.SetTransientFor(parent)
	}
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(24)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)
	mainBox.SetHAlign(gtk.AlignCenter)

	icon := gtk.NewImage()
	icon.SetFromIconName("dialog-error-symbolic")
	icon.SetPixelSize(48)
	mainBox.Append(icon)

	titleLabel := gtk.NewLabel(title)
	titleLabel.AddCSSClass("error-title")
	mainBox.Append(titleLabel)

	msgLabel := gtk.NewLabel(message)
	msgLabel.SetWrap(true)
	msgLabel.SetMaxWidthChars(40)
	mainBox.Append(msgLabel)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.SetHAlign(gtk.AlignCenter)
	okBtn.SetMarginTop(12)
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	if onClose != nil {
		window.ConnectCloseRequest(func() bool {
			glib.IdleAdd(onClose)
			return false
		})
	}

	window.SetChild(mainBox)
	window.Present()
}

// Quit resets redshift to its automatic schedule and closes the
// application.
func (a *Application) Quit() {
	if a.quitting {
		return
	}
	a.quitting = true

	if a.exitCode == 0 {
		a.ctrl.Shutdown()
	}
	if a.stopWatcher != nil {
		a.stopWatcher()
		a.watcher.Close()
	}
	if a.tray != nil {
		systray.Quit()
	}
	a.app.Quit()
}
