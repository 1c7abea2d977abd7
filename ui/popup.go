package ui

import (
	"fmt"
	"math"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/redshift-tray/common"
	"github.com/yllada/redshift-tray/controller"
	"github.com/yllada/redshift-tray/store"
)

const (
	tempGroupTitle       = "Color temperature"
	brightnessGroupTitle = "Brightness"
)

// Popup is the small window with the temperature and brightness sliders.
// Closing it or moving focus elsewhere hides it; the app keeps running in
// the tray.
type Popup struct {
	app         *Application
	window      *gtk.ApplicationWindow
	tempFrame   *gtk.Frame
	brightFrame *gtk.Frame
	tempScale   *gtk.Scale
	brightScale *gtk.Scale
	tempLabel   *gtk.Label
	brightLabel *gtk.Label
}

// NewPopup creates the popup window. It starts hidden.
func NewPopup(app *Application) *Popup {
	p := &Popup{app: app}

	p.window = gtk.NewApplicationWindow(app.app)
	p.window.SetTitle(common.AppName)
	p.window.SetIconName(common.ToolName)
	p.window.SetDefaultSize(common.PopupWidth, -1)
	p.window.SetResizable(false)
	p.window.SetDecorated(false)
	p.window.SetHideOnClose(true)

	p.createLayout()

	p.window.NotifyProperty("is-active", func() {
		if !p.window.IsActive() && p.window.IsVisible() {
			p.window.SetVisible(false)
		}
	})

	return p
}

// createLayout builds the two slider groups and the Apply button.
func (p *Popup) createLayout() {
	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.AddCSSClass("popup")
	mainBox.SetMarginTop(12)
	mainBox.SetMarginBottom(12)
	mainBox.SetMarginStart(12)
	mainBox.SetMarginEnd(12)

	// Temperature
	p.tempScale = gtk.NewScaleWithRange(gtk.OrientationHorizontal,
		common.MinTemperature, common.MaxTemperature, common.TemperatureStep)
	p.tempScale.AddCSSClass("temperature")
	p.tempScale.SetDrawValue(false)
	p.tempScale.SetHExpand(true)
	p.tempLabel = newValueLabel()
	p.tempScale.ConnectValueChanged(p.updateLabels)

	p.tempFrame = gtk.NewFrame(tempGroupTitle)
	p.tempFrame.SetChild(sliderRow(p.tempScale, p.tempLabel))
	mainBox.Append(p.tempFrame)

	// Brightness in percent
	p.brightScale = gtk.NewScaleWithRange(gtk.OrientationHorizontal,
		common.MinBrightness*100, common.MaxBrightness*100, common.BrightnessStepPercent)
	p.brightScale.SetDrawValue(false)
	p.brightScale.SetHExpand(true)
	p.brightLabel = newValueLabel()
	p.brightScale.ConnectValueChanged(p.updateLabels)

	p.brightFrame = gtk.NewFrame(brightnessGroupTitle)
	p.brightFrame.SetChild(sliderRow(p.brightScale, p.brightLabel))
	mainBox.Append(p.brightFrame)

	applyBtn := gtk.NewButtonWithLabel("Apply")
	applyBtn.AddCSSClass("suggested-action")
	applyBtn.SetHAlign(gtk.AlignEnd)
	applyBtn.ConnectClicked(p.onApply)
	mainBox.Append(applyBtn)

	p.window.SetChild(mainBox)
}

func newValueLabel() *gtk.Label {
	label := gtk.NewLabel("")
	label.AddCSSClass("value-label")
	label.SetXAlign(1)
	return label
}

func sliderRow(scale *gtk.Scale, label *gtk.Label) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 8)
	row.Append(scale)
	row.Append(label)
	return row
}

// Show loads the stored values into the sliders and presents the window.
func (p *Popup) Show() {
	p.Refresh()

	pos := p.app.ctrl.Settings().WindowPosition()
	p.window.Present()
	glib.IdleAdd(func() {
		placePopup(p.window, pos)
	})
}

// Toggle shows the popup, or hides it when it is already visible.
func (p *Popup) Toggle() {
	if p.window.IsVisible() {
		p.window.SetVisible(false)
		return
	}
	p.Show()
}

// Refresh re-reads the slider range and values from the stores.
func (p *Popup) Refresh() {
	state := p.app.ctrl.SliderState()

	p.tempScale.SetRange(float64(state.Min), float64(state.Max))
	p.tempScale.SetValue(float64(state.Temperature))
	p.brightScale.SetValue(math.Round(state.Brightness * 100))
	p.updateLabels()
}

// updateLabels shows the slider values next to the sliders and the stored
// values in the group titles.
func (p *Popup) updateLabels() {
	temp, brightness := p.values()
	p.tempLabel.SetText(fmt.Sprintf("%d K", temp))
	p.brightLabel.SetText(store.FormatFloat(brightness))

	tool := p.app.ctrl.Tool()
	p.tempFrame.SetLabel(fmt.Sprintf("%s (%d)", tempGroupTitle, tool.DayTemperature()))
	p.brightFrame.SetLabel(fmt.Sprintf("%s (%s)", brightnessGroupTitle, store.FormatFloat(tool.Brightness())))
}

// values returns the slider positions as Kelvin and a brightness ratio.
func (p *Popup) values() (int, float64) {
	temp := snapTemperature(p.tempScale.Value())
	lo, hi := p.tempScale.Adjustment().Lower(), p.tempScale.Adjustment().Upper()
	temp = controller.Clamp(temp, int(lo), int(hi))

	brightness := math.Round(p.brightScale.Value()) / 100
	return temp, brightness
}

func (p *Popup) onApply() {
	temp, brightness := p.values()
	err := p.app.ctrl.ApplyOverride(temp, brightness)
	p.app.handleApplyError(err)
	p.updateLabels()
	p.app.refreshTray()
}

// snapTemperature rounds a slider value to the temperature step.
func snapTemperature(v float64) int {
	return int(math.Round(v/common.TemperatureStep)) * common.TemperatureStep
}
