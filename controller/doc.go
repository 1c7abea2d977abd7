/*
Package controller synchronizes the redshift configuration, the
application settings and the redshift process.

Edits always follow the same order: update memory, persist, then command
redshift. redshift reads nothing from the tray at run time; the file on
disk and the command line must agree before it is launched.

	ctrl := controller.New(tool, settings, redshift.NewProcess(tool, "", nil))
	if err := ctrl.Startup(); errors.Is(err, common.ErrToolNotInstalled) {
		// fatal
	}
	err := ctrl.ApplyOverride(4500, 0.8)

Bounds edits clamp the stored temperature into the new range and re-apply
only when the value moved.
*/
package controller
