// Package redshift provides access to redshift's own configuration and
// launches the redshift binary.
//
// # Configuration
//
// Config wraps the [redshift] section of ~/.config/redshift.conf:
//
//	[redshift]
//	temp-day=5000
//	temp-night=5000
//	transition=0
//	brightness=0.8
//	brightness-day=0.8
//	brightness-night=0.8
//	gamma=1
//
// Keys the tray does not own, and other sections such as [manual], are
// preserved when the file is saved. Saves replace the file atomically.
//
// # Process
//
// Process issues one-way commands to redshift:
//
//	redshift -x -P -O <temp> -b <brightness>   manual override
//	redshift -x -P                             back to automatic
//
// The child is detached and never awaited. A missing binary is reported as
// common.ErrToolNotInstalled.
//
// # Watching
//
// Watcher notifies when redshift.conf is edited outside the tray so the
// in-memory Config can be reloaded.
package redshift
