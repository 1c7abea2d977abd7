// Package ui provides the graphical user interface for Redshift Tray.
// This file contains the CSS styles for the popup and settings dialog.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles; colors derive from currentColor where possible.
const appCSS = `
/* Popup */
.popup {
    padding: 12px;
}

.popup frame {
    border-radius: 10px;
    border: 1px solid alpha(currentColor, 0.15);
    padding: 6px 10px;
}

.popup frame > label {
    font-weight: 600;
}

.popup scale {
    min-width: 280px;
}

.popup scale.temperature trough {
    background-image: linear-gradient(to right, #ff8a00, #ffd6a5, #ffffff, #cfe4ff);
}

.value-label {
    font-feature-settings: "tnum";
    min-width: 64px;
}

/* Settings dialog */
.settings-title {
    font-weight: 500;
}

.preferences-card {
    border-radius: 12px;
    border: 1px solid alpha(currentColor, 0.12);
}

.dialog-action-area {
    border-top: 1px solid alpha(currentColor, 0.1);
    padding-top: 12px;
}

button.dialog-button {
    min-width: 80px;
}

/* Error dialog */
.error-title {
    font-weight: 700;
    font-size: 15px;
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
