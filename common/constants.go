// Package common provides shared constants, types, and utilities
// used across the Redshift Tray application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.redshifttray.app"
	// AppName is the display name of the application.
	AppName = "Redshift Tray"
	// ConfigDirName is the name of the application's own configuration directory.
	ConfigDirName = "redshift-tray"
)

// File names used by the application.
const (
	SettingsFileName = "settings.yaml"
	LogFileName      = "redshift-tray.log"
)

// External tool.
const (
	// ToolName is the executable name of the color adjustment tool.
	ToolName = "redshift"
	// ToolConfigFileName is the tool's own config file under ~/.config.
	ToolConfigFileName = ToolName + ".conf"
	// ToolConfigSection is the INI section holding the tool's parameters.
	ToolConfigSection = "redshift"
)

// Accepted ranges for a manual override. These are the limits redshift
// itself enforces for -O and -b.
const (
	MinTemperature = 1000
	MaxTemperature = 25000
	MinBrightness  = 0.1
	MaxBrightness  = 1.0
	MinGamma       = 0.1
	MaxGamma       = 10.0
)

// UI constants.
const (
	// TemperatureStep is the slider and spin button increment in Kelvin.
	TemperatureStep = 100
	// BrightnessStepPercent is the brightness slider increment.
	BrightnessStepPercent = 5
	// PopupWidth is the default popup window width.
	PopupWidth = 360
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)
