// Package common provides shared constants, sentinel errors, interfaces,
// logging and file helpers used throughout Redshift Tray.
//
//   - Constants: application identifiers, tool name, override limits
//   - Errors: sentinel errors checked with errors.Is
//   - Logger: leveled logrus-backed logging with rotating file output
//   - Utils: config directories and atomic file replacement
//
// # Usage
//
//	common.LogInfo("Applying %dK", temp)
//
//	if errors.Is(err, common.ErrToolNotInstalled) {
//	    // fatal at startup
//	}
package common
