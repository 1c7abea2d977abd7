// Package cli provides the command tree of Redshift Tray. Without a
// subcommand it starts the tray; the subcommands inspect and change the
// same settings from the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/config"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/redshift"
)

// Deps carries the flags and collaborators shared by all commands.
type Deps struct {
	Version string

	Verbose       bool
	EnableFileLog bool
	Binary        string
	ConfigPath    string
	SettingsPath  string

	// Launcher starts redshift; nil means a real detached process.
	Launcher redshift.Launcher
	// RunGUI runs the tray until it exits and returns the exit status.
	RunGUI func(ctx context.Context, ctrl *controller.Controller) int

	tool     *redshift.Config
	settings *config.Settings
	process  *redshift.Process
	ctrl     *controller.Controller
	exitCode int
}

// NewRootCmd builds the root command. Persistent flags select the files
// and the redshift binary; PersistentPreRunE creates the stores and the
// controller every command works with.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:   "redshift-tray",
		Short: "tray front-end for redshift",
		Long: `Redshift Tray sets redshift's color temperature and brightness from a
tray icon popup. Values are written to ~/.config/redshift.conf and applied
with a one-shot manual override.

Run without a command to start the tray.`,
		Version:       deps.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(deps); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not initialize file logging: %v\n", err)
			}
			return deps.build()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.RunGUI == nil {
				return errors.New("graphical interface is not available in this build")
			}
			common.LogInfo("Starting %s v%s", common.AppName, deps.Version)
			deps.exitCode = deps.RunGUI(cmd.Context(), deps.ctrl)
			if deps.exitCode != 0 {
				common.LogWarn("Application exited with code %d", deps.exitCode)
			}
			return nil
		},
	}
	cmd.SetVersionTemplate(common.AppName + " v{{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&deps.Verbose, "verbose", "v", deps.Verbose, "enable debug logging")
	flags.StringVar(&deps.Binary, "redshift-bin", deps.Binary, "redshift executable (default \"redshift\" on PATH)")
	flags.StringVar(&deps.ConfigPath, "config", deps.ConfigPath, "redshift configuration file (default ~/.config/redshift.conf)")
	flags.StringVar(&deps.SettingsPath, "settings", deps.SettingsPath, "tray settings file (default ~/.config/redshift-tray/settings.yaml)")

	cmd.AddCommand(
		NewStatusCmd(deps),
		NewSetCmd(deps),
		NewApplyCmd(deps),
		NewResetCmd(deps),
		NewBoundsCmd(deps),
		NewTUICmd(deps),
	)

	return cmd
}

func setupLogging(deps *Deps) error {
	level := common.LevelInfo
	if deps.Verbose {
		level = common.LevelDebug
	}
	return common.InitLogger(common.LogConfig{
		Level:       level,
		EnableFile:  deps.EnableFileLog,
		MaxFileSize: 5 * 1024 * 1024, // 5MB
		MaxBackups:  5,
	})
}

// build creates the stores, the process and the controller. The stores
// are not loaded yet.
func (d *Deps) build() error {
	if d.ConfigPath == "" {
		path, err := redshift.DefaultConfigPath()
		if err != nil {
			return err
		}
		d.ConfigPath = path
	}
	if d.SettingsPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		d.SettingsPath = path
	}

	d.tool = redshift.NewConfig(d.ConfigPath)
	d.settings = config.NewSettings(d.SettingsPath)
	d.process = redshift.NewProcess(d.tool, d.Binary, d.Launcher)
	d.ctrl = controller.New(d.tool, d.settings, d.process)
	return nil
}

// load reads both stores without applying anything. Unreadable files fall
// back to defaults.
func (d *Deps) load() {
	if err := d.tool.Load(); err != nil {
		common.LogWarn("Using redshift defaults: %v", err)
	}
	if err := d.settings.Load(); err != nil {
		common.LogWarn("Using default settings: %v", err)
	}
}

// warnOnSaveError turns a persistence failure into a warning when
// redshift itself was commanded successfully.
func warnOnSaveError(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, common.ErrConfigSave) &&
		!errors.Is(err, common.ErrToolNotInstalled) &&
		!errors.Is(err, common.ErrLaunchFailed) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		return nil
	}
	return err
}
