// Package store provides the key-value store shared by the redshift and
// application settings. A Store owns a closed set of keys, each with a kind
// and an optional static default, and persists through a Backend.
package store

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/yllada/redshift-tray/common"
)

// Kind is the value type a key holds on disk.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Key declares one entry of a store's closed key set.
type Key struct {
	// Name is the key as written to the backing store.
	Name string
	// Kind constrains what values parse for this key.
	Kind Kind
	// Default is returned when the key has no stored value.
	// An empty default means the key has none.
	Default string
	// Validate optionally restricts values further.
	Validate func(value string) error
}

func (k Key) check(value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is empty", common.ErrInvalidValue, k.Name)
	}

	var err error
	switch k.Kind {
	case KindInt:
		_, err = strconv.Atoi(value)
	case KindFloat:
		var f float64
		f, err = strconv.ParseFloat(value, 64)
		if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
			err = errors.New("not finite")
		}
	case KindBool:
		_, err = strconv.ParseBool(value)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a valid %s", common.ErrInvalidValue, k.Name, value, k.Kind)
	}

	if k.Validate != nil {
		if err := k.Validate(value); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", common.ErrInvalidValue, k.Name, value, err)
		}
	}
	return nil
}

// Entry is a stored key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Backend reads and writes the persisted mapping.
type Backend interface {
	// Load returns the persisted values. A missing backing store
	// returns an empty map and no error.
	Load() (map[string]string, error)
	// Save replaces the persisted values with entries.
	Save(entries []Entry) error
}

// Store is an in-memory mapping over a closed key set with write-back
// persistence. It is not safe for concurrent use; callers serialize access.
type Store struct {
	name    string
	keys    map[string]Key
	order   []string
	values  map[string]string
	backend Backend
}

// New creates a store named name (used in log messages) over the given keys.
func New(name string, backend Backend, keys ...Key) *Store {
	s := &Store{
		name:    name,
		keys:    make(map[string]Key, len(keys)),
		order:   make([]string, 0, len(keys)),
		values:  make(map[string]string),
		backend: backend,
	}
	for _, k := range keys {
		if _, dup := s.keys[k.Name]; !dup {
			s.order = append(s.order, k.Name)
		}
		s.keys[k.Name] = k
	}
	return s
}

// Name returns the store name.
func (s *Store) Name() string {
	return s.name
}

// Keys returns the declared keys in declaration order.
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.order))
	for _, name := range s.order {
		keys = append(keys, s.keys[name])
	}
	return keys
}

// Load replaces the in-memory values with the backend's. Entries that do not
// parse for their key are skipped with a warning and fall back to defaults.
func (s *Store) Load() error {
	loaded, err := s.backend.Load()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrConfigLoad, s.name, err)
	}

	values := make(map[string]string, len(loaded))
	for name, value := range loaded {
		key, known := s.keys[name]
		if !known {
			continue
		}
		if err := key.check(value); err != nil {
			common.LogWarn("%s: skipping entry: %v", s.name, err)
			continue
		}
		values[name] = value
	}
	s.values = values

	common.LogDebug("%s: loaded %d entries", s.name, len(values))
	return nil
}

// Get returns the stored value for key. Without a stored value it returns the
// first non-empty fallback, then the key's default. A known key with neither
// fails with ErrKeyNotConfigured, as does any unknown key.
func (s *Store) Get(key string, fallback ...string) (string, error) {
	k, known := s.keys[key]
	if !known {
		return "", fmt.Errorf("%w: %s has no key %q", common.ErrKeyNotConfigured, s.name, key)
	}

	if value, ok := s.values[key]; ok {
		return value, nil
	}
	if len(fallback) > 0 && fallback[0] != "" {
		return fallback[0], nil
	}
	if k.Default != "" {
		return k.Default, nil
	}
	return "", fmt.Errorf("%w: %s.%s has no value or default", common.ErrKeyNotConfigured, s.name, key)
}

// Set updates key in memory. It does not persist.
func (s *Store) Set(key, value string) error {
	k, known := s.keys[key]
	if !known {
		return fmt.Errorf("%w: %s has no key %q", common.ErrKeyNotConfigured, s.name, key)
	}
	if err := k.check(value); err != nil {
		return err
	}
	s.values[key] = value
	return nil
}

// Check reports whether value would be accepted by Set for key, without
// storing it.
func (s *Store) Check(key, value string) error {
	k, known := s.keys[key]
	if !known {
		return fmt.Errorf("%w: %s has no key %q", common.ErrKeyNotConfigured, s.name, key)
	}
	return k.check(value)
}

// IsSet reports whether key has an explicitly stored value.
func (s *Store) IsSet(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Values returns a copy of the explicitly stored values.
func (s *Store) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Save writes every stored value through the backend in key order.
func (s *Store) Save() error {
	entries := make([]Entry, 0, len(s.values))
	for _, name := range s.order {
		if value, ok := s.values[name]; ok {
			entries = append(entries, Entry{Key: name, Value: value})
		}
	}

	if err := s.backend.Save(entries); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrConfigSave, s.name, err)
	}
	common.LogDebug("%s: saved %d entries", s.name, len(entries))
	return nil
}

// GetInt returns key parsed as an integer.
func (s *Store) GetInt(key string) (int, error) {
	value, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", common.ErrInvalidValue, key, value)
	}
	return n, nil
}

// GetFloat returns key parsed as a float.
func (s *Store) GetFloat(key string) (float64, error) {
	value, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", common.ErrInvalidValue, key, value)
	}
	return f, nil
}

// GetBool returns key parsed as a boolean ("1"/"0" and the strconv forms).
func (s *Store) GetBool(key string) (bool, error) {
	value, err := s.Get(key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", common.ErrInvalidValue, key, value)
	}
	return b, nil
}

// SetInt stores n in decimal.
func (s *Store) SetInt(key string, n int) error {
	return s.Set(key, strconv.Itoa(n))
}

// SetFloat stores f using the shortest decimal that round-trips (0.5, 1).
func (s *Store) SetFloat(key string, f float64) error {
	return s.Set(key, FormatFloat(f))
}

// SetBool stores b as "1" or "0".
func (s *Store) SetBool(key string, b bool) error {
	if b {
		return s.Set(key, "1")
	}
	return s.Set(key, "0")
}

// FormatFloat formats f the way the stores persist it.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
