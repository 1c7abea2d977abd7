// Package common provides shared constants, types, and utilities
// used across the Redshift Tray application.
package common

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the application configuration directory.
// It creates the directory if it doesn't exist.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}

	configDir := filepath.Join(homeDir, ".config", ConfigDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", WrapError(err, "failed to create config directory")
	}

	return configDir, nil
}

// ToolConfigPath returns <home>/.config/redshift.conf.
func ToolConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", ToolConfigFileName), nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFileAtomic replaces path with data. The data goes to a temporary file
// in the same directory which is then renamed over path, so readers see
// either the old or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return WrapError(err, "failed to create directory")
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return WrapError(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return WrapError(err, "failed to write temporary file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return WrapError(err, "failed to sync temporary file")
	}
	if err := tmp.Close(); err != nil {
		return WrapError(err, "failed to close temporary file")
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return WrapError(err, "failed to set permissions")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return WrapError(err, "failed to replace "+filepath.Base(path))
	}
	return nil
}
