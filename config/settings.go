// Package config provides the application's own settings.
// They are persisted to a YAML file in the user's config directory.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/store"
)

// Keys of the settings file.
const (
	KeyTemperatureMin = "temperature_min"
	KeyTemperatureMax = "temperature_max"
	KeyWindowPosition = "window_position"
)

// settingsKeys is the closed key set with the application defaults.
func settingsKeys() []store.Key {
	return []store.Key{
		{Name: KeyTemperatureMin, Kind: store.KindInt, Default: "4500", Validate: validateTemperature},
		{Name: KeyTemperatureMax, Kind: store.KindInt, Default: "6500", Validate: validateTemperature},
		{Name: KeyWindowPosition, Kind: store.KindInt, Default: "0", Validate: validatePosition},
	}
}

func validateTemperature(value string) error {
	n, _ := strconv.Atoi(value)
	if n < common.MinTemperature || n > common.MaxTemperature {
		return fmt.Errorf("must be between %d and %d", common.MinTemperature, common.MaxTemperature)
	}
	return nil
}

func validatePosition(value string) error {
	n, _ := strconv.Atoi(value)
	if !WindowPosition(n).Valid() {
		return common.ErrInvalidWindowPosition
	}
	return nil
}

// Settings holds the slider bounds and popup placement.
type Settings struct {
	*store.Store
	path string
}

// DefaultPath returns <home>/.config/redshift-tray/settings.yaml.
func DefaultPath() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.SettingsFileName), nil
}

// NewSettings creates Settings over the YAML file at path. Call Load before use.
func NewSettings(path string) *Settings {
	return &Settings{
		Store: store.New(common.SettingsFileName, &yamlBackend{path: path}, settingsKeys()...),
		path:  path,
	}
}

// Path returns the backing file path.
func (s *Settings) Path() string {
	return s.path
}

// TemperatureMin returns the lower slider bound in Kelvin.
func (s *Settings) TemperatureMin() int {
	n, err := s.GetInt(KeyTemperatureMin)
	if err != nil {
		panic(err)
	}
	return n
}

// TemperatureMax returns the upper slider bound in Kelvin.
func (s *Settings) TemperatureMax() int {
	n, err := s.GetInt(KeyTemperatureMax)
	if err != nil {
		panic(err)
	}
	return n
}

// WindowPosition returns where the popup is placed.
func (s *Settings) WindowPosition() WindowPosition {
	n, err := s.GetInt(KeyWindowPosition)
	if err != nil {
		panic(err)
	}
	return WindowPosition(n)
}

// SetBounds updates both slider bounds, or neither when either is
// rejected. It does not persist.
func (s *Settings) SetBounds(lo, hi int) error {
	if lo > hi {
		return fmt.Errorf("%w: %d > %d", common.ErrInvalidRange, lo, hi)
	}
	if err := s.Check(KeyTemperatureMin, strconv.Itoa(lo)); err != nil {
		return err
	}
	if err := s.Check(KeyTemperatureMax, strconv.Itoa(hi)); err != nil {
		return err
	}
	if err := s.SetInt(KeyTemperatureMin, lo); err != nil {
		return err
	}
	return s.SetInt(KeyTemperatureMax, hi)
}

// SetWindowPosition updates the popup placement. It does not persist.
func (s *Settings) SetWindowPosition(p WindowPosition) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", common.ErrInvalidWindowPosition, int(p))
	}
	return s.SetInt(KeyWindowPosition, int(p))
}

// yamlBackend stores a flat key: value mapping.
type yamlBackend struct {
	path string
}

func (b *yamlBackend) Load() (map[string]string, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		common.LogWarn("%s is not valid YAML, using defaults: %v", b.path, err)
		return map[string]string{}, nil
	}
	return values, nil
}

func (b *yamlBackend) Save(entries []store.Entry) error {
	// A mapping node keeps the keys in schema order.
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Value},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	return common.WriteFileAtomic(b.path, buf.Bytes(), 0600)
}
