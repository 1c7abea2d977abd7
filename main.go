// Package main provides the entry point for the Redshift Tray application.
// Redshift Tray is a GTK4 system tray front-end for redshift that sets the
// screen color temperature and brightness with a one-shot manual override.
//
// Features:
//   - Popup with temperature and brightness sliders
//   - Settings for the slider range and popup position
//   - Values persisted to ~/.config/redshift.conf and applied immediately
//   - Terminal UI and subcommands for scripting
//
// Usage:
//
//	redshift-tray [command] [flags]
//
// Environment:
//
//	The application requires redshift to be installed on the system.
package main

import (
	"context"
	"os"

	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/redshift-tray/cli"
	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	deps := &cli.Deps{
		Version:       versionString(),
		EnableFileLog: true,
		RunGUI:        runGUI,
	}

	code := cli.Run(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	common.CloseLogger()
	os.Exit(code)
}

// runGUI starts the GTK application. A cancelled context (SIGINT, SIGTERM)
// quits it the same way the tray's Exit item does.
func runGUI(ctx context.Context, ctrl *controller.Controller) int {
	app := ui.NewApplication(common.AppID, appVersion, ctrl, ui.DesktopNotifier{})

	go func() {
		<-ctx.Done()
		glib.IdleAdd(app.Quit)
	}()

	// GTK only sees the program name; cobra has parsed the rest.
	return app.Run(os.Args[:1])
}

func versionString() string {
	if buildTime == "unknown" {
		return appVersion
	}
	return appVersion + " (build " + buildTime + ", commit " + commitSHA + ")"
}
