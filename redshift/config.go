// Package redshift provides access to redshift's own configuration file and
// launches the redshift binary.
// This file contains the Config type backed by ~/.config/redshift.conf.
package redshift

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/store"
)

// Keys of the [redshift] section.
const (
	KeyTempDay         = "temp-day"
	KeyTempNight       = "temp-night"
	KeyTransition      = "transition"
	KeyBrightness      = "brightness"
	KeyBrightnessDay   = "brightness-day"
	KeyBrightnessNight = "brightness-night"
	KeyGamma           = "gamma"
)

func init() {
	// redshift.conf is written as key=value, without spaces or alignment.
	ini.PrettyFormat = false
	ini.PrettyEqual = false
}

// configKeys is the closed key set with redshift's defaults.
func configKeys() []store.Key {
	return []store.Key{
		{Name: KeyTempDay, Kind: store.KindInt, Default: "5000", Validate: validateTemperature},
		{Name: KeyTempNight, Kind: store.KindInt, Default: "5000", Validate: validateTemperature},
		{Name: KeyTransition, Kind: store.KindBool, Default: "1"},
		{Name: KeyBrightness, Kind: store.KindFloat, Default: "1", Validate: validateBrightness},
		{Name: KeyBrightnessDay, Kind: store.KindFloat, Default: "1", Validate: validateBrightness},
		{Name: KeyBrightnessNight, Kind: store.KindFloat, Default: "1", Validate: validateBrightness},
		{Name: KeyGamma, Kind: store.KindFloat, Default: "1", Validate: validateGamma},
	}
}

// Validators run after the kind check, so the value already parses.

func validateTemperature(value string) error {
	n, _ := strconv.Atoi(value)
	if n < common.MinTemperature || n > common.MaxTemperature {
		return fmt.Errorf("must be between %d and %d", common.MinTemperature, common.MaxTemperature)
	}
	return nil
}

func validateBrightness(value string) error {
	return floatInRange(value, common.MinBrightness, common.MaxBrightness)
}

func validateGamma(value string) error {
	return floatInRange(value, common.MinGamma, common.MaxGamma)
}

func floatInRange(value string, lo, hi float64) error {
	f, _ := strconv.ParseFloat(value, 64)
	if !(f >= lo && f <= hi) {
		return fmt.Errorf("must be between %s and %s", store.FormatFloat(lo), store.FormatFloat(hi))
	}
	return nil
}

// Config is redshift's configuration as seen by the tray: the [redshift]
// section of redshift.conf. Other sections and keys in the file are kept
// untouched across saves.
type Config struct {
	*store.Store
	path string
}

// DefaultConfigPath returns <home>/.config/redshift.conf.
func DefaultConfigPath() (string, error) {
	return common.ToolConfigPath()
}

// NewConfig creates a Config over the INI file at path. Call Load before use.
func NewConfig(path string) *Config {
	backend := &iniBackend{path: path, section: common.ToolConfigSection}
	return &Config{
		Store: store.New(common.ToolConfigFileName, backend, configKeys()...),
		path:  path,
	}
}

// Path returns the backing file path.
func (c *Config) Path() string {
	return c.path
}

// DayTemperature returns temp-day in Kelvin.
func (c *Config) DayTemperature() int {
	return mustInt(c.GetInt(KeyTempDay))
}

// NightTemperature returns temp-night in Kelvin.
func (c *Config) NightTemperature() int {
	return mustInt(c.GetInt(KeyTempNight))
}

// Brightness returns the brightness ratio used for a manual override.
func (c *Config) Brightness() float64 {
	return mustFloat(c.GetFloat(KeyBrightness))
}

// Transition reports whether redshift fades between day and night.
func (c *Config) Transition() bool {
	b, err := c.GetBool(KeyTransition)
	if err != nil {
		panic(err)
	}
	return b
}

// Gamma returns the gamma correction.
func (c *Config) Gamma() float64 {
	return mustFloat(c.GetFloat(KeyGamma))
}

// SetTemperature writes temp to both temp-day and temp-night.
func (c *Config) SetTemperature(temp int) error {
	if err := c.SetInt(KeyTempDay, temp); err != nil {
		return err
	}
	return c.SetInt(KeyTempNight, temp)
}

// SetManualOverride records a one-shot override: a single temperature for
// day and night, one brightness for all three brightness keys, and no
// transition so the values apply at once.
func (c *Config) SetManualOverride(temp int, brightness float64) error {
	if err := c.SetTemperature(temp); err != nil {
		return err
	}
	for _, key := range []string{KeyBrightness, KeyBrightnessDay, KeyBrightnessNight} {
		if err := c.SetFloat(key, brightness); err != nil {
			return err
		}
	}
	return c.SetBool(KeyTransition, false)
}

// LogrusFields returns the effective values for structured logging.
func (c *Config) LogrusFields() logrus.Fields {
	fields := logrus.Fields{}
	for _, k := range c.Keys() {
		if v, err := c.Get(k.Name); err == nil {
			fields[k.Name] = v
		}
	}
	return fields
}

// Typed accessors only read declared keys, so an error here is a bug.
func mustInt(n int, err error) int {
	if err != nil {
		panic(err)
	}
	return n
}

func mustFloat(f float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return f
}

// iniBackend persists one section of an INI file. It keeps the whole parsed
// file so that a save only rewrites the keys it owns. A file that does not
// parse is copied to <path>.bak before the first save replaces it.
type iniBackend struct {
	path     string
	section  string
	file     *ini.File
	unparsed []byte
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		Loose:                   true, // missing file means empty
		SkipUnrecognizableLines: true,
	}
}

func (b *iniBackend) backupPath() string {
	return b.path + ".bak"
}

func (b *iniBackend) Load() (map[string]string, error) {
	b.file, b.unparsed = ini.Empty(loadOptions()), nil

	values := make(map[string]string)
	if !common.FileExists(b.path) {
		return values, nil
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, err
	}

	file, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		common.LogWarn("%s is unreadable, using defaults; a copy will be kept in %s on the next save: %v",
			b.path, b.backupPath(), err)
		b.unparsed = data
		return values, nil
	}
	b.file = file

	sec, err := file.GetSection(b.section)
	if err != nil {
		return values, nil
	}
	for _, key := range sec.Keys() {
		values[key.Name()] = key.String()
	}
	return values, nil
}

func (b *iniBackend) Save(entries []store.Entry) error {
	if b.file == nil {
		b.file = ini.Empty(loadOptions())
	}

	if b.unparsed != nil {
		if err := common.WriteFileAtomic(b.backupPath(), b.unparsed, 0644); err != nil {
			return fmt.Errorf("error keeping a copy of %s: %w", b.path, err)
		}
		common.LogWarn("Replacing unreadable %s, previous content saved to %s", b.path, b.backupPath())
		b.unparsed = nil
	}

	sec := b.file.Section(b.section)
	for _, e := range entries {
		sec.Key(e.Key).SetValue(e.Value)
	}

	var buf bytes.Buffer
	if _, err := b.file.WriteTo(&buf); err != nil {
		return fmt.Errorf("error serializing %s: %w", b.path, err)
	}
	return common.WriteFileAtomic(b.path, buf.Bytes(), 0644)
}
