// Package controller keeps the in-memory settings, the files on disk and
// the running redshift consistent. Every user edit goes through it.
package controller

import (
	"errors"
	"fmt"
	"math"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/config"
	"github.com/yllada/redshift-tray/redshift"
	"github.com/yllada/redshift-tray/store"
)

// Applier commands the external tool.
type Applier interface {
	Apply() error
	Reset() error
}

// SliderState is what the popup needs to draw its sliders.
type SliderState struct {
	Min         int
	Max         int
	Temperature int
	Brightness  float64
}

// Controller wires the two stores to the process. It is not safe for
// concurrent use; callers run it on their UI loop.
type Controller struct {
	tool     *redshift.Config
	settings *config.Settings
	process  Applier
}

// New creates a Controller over stores owned by the caller.
func New(tool *redshift.Config, settings *config.Settings, process Applier) *Controller {
	return &Controller{
		tool:     tool,
		settings: settings,
		process:  process,
	}
}

// Tool returns the redshift configuration.
func (c *Controller) Tool() *redshift.Config {
	return c.tool
}

// Settings returns the application settings.
func (c *Controller) Settings() *config.Settings {
	return c.settings
}

// Clamp limits t to [lo, hi]. With lo > hi the result is lo.
func Clamp(t, lo, hi int) int {
	return max(lo, min(t, hi))
}

// ValidateOverride checks a manual override against redshift's limits.
func ValidateOverride(temp int, brightness float64) error {
	if temp < common.MinTemperature || temp > common.MaxTemperature {
		return fmt.Errorf("%w: temperature %dK outside %d-%d", common.ErrInvalidValue,
			temp, common.MinTemperature, common.MaxTemperature)
	}
	if math.IsNaN(brightness) || brightness < common.MinBrightness || brightness > common.MaxBrightness {
		return fmt.Errorf("%w: brightness %s outside %s-%s", common.ErrInvalidValue,
			store.FormatFloat(brightness), store.FormatFloat(common.MinBrightness), store.FormatFloat(common.MaxBrightness))
	}
	return nil
}

// Startup loads both stores and applies the stored override. Unreadable
// files fall back to defaults. A missing redshift binary is returned as
// ErrToolNotInstalled and is fatal for the caller.
func (c *Controller) Startup() error {
	if err := c.tool.Load(); err != nil {
		common.LogWarn("Using redshift defaults: %v", err)
	}
	if err := c.settings.Load(); err != nil {
		common.LogWarn("Using default settings: %v", err)
	}

	common.GetLogger().WithFields(c.tool.LogrusFields()).Info("Loaded redshift configuration")
	return c.process.Apply()
}

// ApplyOverride stores temp and brightness as the manual override,
// persists them and then commands redshift. A failed save is reported
// wrapped in ErrConfigSave after redshift has still been commanded.
func (c *Controller) ApplyOverride(temp int, brightness float64) error {
	if err := ValidateOverride(temp, brightness); err != nil {
		return err
	}
	if err := c.tool.SetManualOverride(temp, brightness); err != nil {
		return err
	}

	saveErr := c.tool.Save()
	if saveErr != nil {
		common.LogWarn("Override not persisted: %v", saveErr)
	}
	return errors.Join(saveErr, c.process.Apply())
}

// UpdateSettings stores new slider bounds and popup placement, then clamps
// the current temperature into the bounds. redshift is only re-applied
// when clamping changed the temperature.
func (c *Controller) UpdateSettings(lo, hi int, pos config.WindowPosition) error {
	if lo > hi {
		return fmt.Errorf("%w: %d > %d", common.ErrInvalidRange, lo, hi)
	}
	if !pos.Valid() {
		return fmt.Errorf("%w: %d", common.ErrInvalidWindowPosition, int(pos))
	}
	if err := c.settings.SetBounds(lo, hi); err != nil {
		return err
	}
	if err := c.settings.SetWindowPosition(pos); err != nil {
		return err
	}

	var errs []error
	if err := c.settings.Save(); err != nil {
		common.LogWarn("Settings not persisted: %v", err)
		errs = append(errs, err)
	}

	current := c.tool.DayTemperature()
	clamped := Clamp(current, lo, hi)
	if clamped == current {
		return errors.Join(errs...)
	}

	common.LogInfo("Clamping temperature %dK into %d-%dK: %dK", current, lo, hi, clamped)
	if err := c.tool.SetTemperature(clamped); err != nil {
		return errors.Join(append(errs, err)...)
	}
	if err := c.tool.Save(); err != nil {
		common.LogWarn("Clamped temperature not persisted: %v", err)
		errs = append(errs, err)
	}
	errs = append(errs, c.process.Apply())
	return errors.Join(errs...)
}

// SliderState returns the slider range and the stored values. The
// temperature is clamped for display only.
func (c *Controller) SliderState() SliderState {
	lo, hi := c.settings.TemperatureMin(), c.settings.TemperatureMax()
	return SliderState{
		Min:         lo,
		Max:         hi,
		Temperature: Clamp(c.tool.DayTemperature(), lo, hi),
		Brightness:  c.tool.Brightness(),
	}
}

// Reload re-reads redshift.conf after an external edit.
func (c *Controller) Reload() error {
	if err := c.tool.Load(); err != nil {
		return err
	}
	common.GetLogger().WithFields(c.tool.LogrusFields()).Debug("Reloaded redshift configuration")
	return nil
}

// Shutdown returns redshift to its automatic schedule. Failures are logged.
func (c *Controller) Shutdown() {
	if err := c.process.Reset(); err != nil {
		common.LogWarn("Could not reset redshift: %v", err)
	}
}
