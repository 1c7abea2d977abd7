// Package ui provides the graphical user interface for Redshift Tray.
// This file contains the SettingsDialog for slider bounds and popup placement.
package ui

import (
	"errors"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/config"
)

// SettingsDialog edits the temperature bounds and the popup position.
type SettingsDialog struct {
	window       *gtk.Window
	app          *Application
	minSpin      *gtk.SpinButton
	maxSpin      *gtk.SpinButton
	positionDrop *gtk.DropDown
}

// NewSettingsDialog creates the settings dialog. It starts hidden and is
// reused for every Show.
func NewSettingsDialog(app *Application) *SettingsDialog {
	sd := &SettingsDialog{app: app}
	sd.build()
	return sd
}

// build constructs the dialog UI.
func (sd *SettingsDialog) build() {
	sd.window = gtk.NewWindow()
	sd.window.SetTitle("Settings")
	sd.window.SetApplication(sd.app.app)
	sd.window.SetModal(true)
	sd.window.SetDefaultSize(440, -1)
	sd.window.SetResizable(false)
	sd.window.SetHideOnClose(true)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(24)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(24)
	mainBox.SetMarginEnd(24)

	// Temperature range
	rangeSection := sd.createSection("Temperature range", "weather-clear-symbolic")
	rangeCard := sd.createCard()

	sd.minSpin = newTemperatureSpin()
	rangeCard.Append(sd.createSettingRow(
		"Minimum",
		"Lowest temperature the slider offers, in Kelvin",
		sd.minSpin,
	))
	rangeCard.Append(sd.createSeparator())

	sd.maxSpin = newTemperatureSpin()
	rangeCard.Append(sd.createSettingRow(
		"Maximum",
		"Highest temperature the slider offers, in Kelvin",
		sd.maxSpin,
	))

	rangeSection.Append(rangeCard)
	mainBox.Append(rangeSection)

	// Window
	windowSection := sd.createSection("Window", "preferences-desktop-display-symbolic")
	windowCard := sd.createCard()

	labels := make([]string, 0, len(config.WindowPositions()))
	for _, p := range config.WindowPositions() {
		labels = append(labels, p.String())
	}
	sd.positionDrop = gtk.NewDropDown(gtk.NewStringList(labels), nil)
	sd.positionDrop.SetVAlign(gtk.AlignCenter)
	sd.positionDrop.AddCSSClass("flat")
	windowCard.Append(sd.createSettingRow(
		"Position",
		"Where the popup appears on screen",
		sd.positionDrop,
	))

	windowSection.Append(windowCard)
	mainBox.Append(windowSection)

	rootBox.Append(mainBox)

	// Action buttons
	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(24)
	buttonBar.SetMarginEnd(24)
	buttonBar.AddCSSClass("dialog-action-area")

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.AddCSSClass("dialog-button")
	cancelBtn.ConnectClicked(func() {
		sd.window.Close()
	})
	buttonBar.Append(cancelBtn)

	saveBtn := gtk.NewButtonWithLabel("Save")
	saveBtn.AddCSSClass("suggested-action")
	saveBtn.AddCSSClass("dialog-button")
	saveBtn.ConnectClicked(func() {
		if sd.saveSettings() {
			sd.window.Close()
		}
	})
	buttonBar.Append(saveBtn)

	rootBox.Append(buttonBar)

	sd.window.SetChild(rootBox)
}

func newTemperatureSpin() *gtk.SpinButton {
	spin := gtk.NewSpinButtonWithRange(common.MinTemperature, common.MaxTemperature, common.TemperatureStep)
	spin.SetVAlign(gtk.AlignCenter)
	spin.SetNumeric(true)
	return spin
}

// createSection creates a section with icon and title.
func (sd *SettingsDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	// Header with icon
	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)

	return section
}

// createCard creates a styled card container for settings.
func (sd *SettingsDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	card.AddCSSClass("preferences-card")
	return card
}

// createSettingRow creates a row with title, description, and widget.
func (sd *SettingsDialog) createSettingRow(title string, description string, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	// Text container (title + description)
	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	descLabel := gtk.NewLabel(description)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	descLabel.SetWrapMode(2) // PANGO_WRAP_WORD_CHAR
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// createSeparator creates a styled separator for cards.
func (sd *SettingsDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}

// saveSettings hands the dialog values to the controller. It reports
// whether the dialog can close.
func (sd *SettingsDialog) saveSettings() bool {
	lo := sd.minSpin.ValueAsInt()
	hi := sd.maxSpin.ValueAsInt()
	pos := config.WindowPosition(sd.positionDrop.Selected())

	err := sd.app.ctrl.UpdateSettings(lo, hi, pos)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrInvalidRange):
		sd.app.showError(sd.window, "Invalid range", "The minimum temperature must not exceed the maximum.", nil)
		return false
	case errors.Is(err, common.ErrInvalidValue), errors.Is(err, common.ErrInvalidWindowPosition):
		sd.app.showError(sd.window, "Invalid settings", err.Error(), nil)
		return false
	default:
		sd.app.handleApplyError(err)
	}

	sd.app.popup.Refresh()
	sd.app.refreshTray()
	return true
}

// Show pre-fills the dialog from the stored settings and presents it.
func (sd *SettingsDialog) Show() {
	settings := sd.app.ctrl.Settings()
	sd.minSpin.SetValue(float64(settings.TemperatureMin()))
	sd.maxSpin.SetValue(float64(settings.TemperatureMax()))
	sd.positionDrop.SetSelected(uint(settings.WindowPosition()))
	sd.window.Present()
}
