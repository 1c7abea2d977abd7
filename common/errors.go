// Package common provides shared constants, types, and utilities
// used across the Redshift Tray application.
package common

import "errors"

// Sentinel errors. Check them with errors.Is().
var (
	// Tool errors.
	ErrToolNotInstalled = errors.New("redshift is not installed")
	ErrLaunchFailed     = errors.New("failed to launch redshift")

	// Store errors.
	ErrKeyNotConfigured = errors.New("config key not configured")
	ErrInvalidValue     = errors.New("invalid config value")

	// Settings errors.
	ErrInvalidRange          = errors.New("minimum temperature exceeds maximum")
	ErrInvalidWindowPosition = errors.New("invalid window position")

	// Persistence errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
