package preferences

import (
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	tickInterval *widget.Entry
	graceDelay   *widget.Entry
	animate      *widget.Check
	animDuration *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("tickpad Settings")

	prefs := &Window{
		window:       window,
		settings:     settings,
		onSave:       onSave,
		tickInterval: widget.NewEntry(),
		graceDelay:   widget.NewEntry(),
		animate:      widget.NewCheck("Animate progress bar", nil),
		animDuration: widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Tick every"), prefs.tickInterval, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Hold finished state for"), prefs.graceDelay, widget.NewLabel("ms")),
		prefs.animate,
		container.NewHBox(widget.NewLabel("Animation length"), prefs.animDuration, widget.NewLabel("ms")),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 240))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.tickInterval.SetText(formatMillis(settings.TickInterval))
	prefs.graceDelay.SetText(formatMillis(settings.GraceDelay))
	prefs.animate.SetChecked(settings.AnimateProgress)
	prefs.animDuration.SetText(formatMillis(settings.AnimationDuration))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if value, ok := parseMillis(prefs.tickInterval.Text, false, MaxTickInterval); ok {
		settings.TickInterval = value
	}
	if value, ok := parseMillis(prefs.graceDelay.Text, true, MaxGraceDelay); ok {
		settings.GraceDelay = value
	}
	if value, ok := parseMillis(prefs.animDuration.Text, true, MaxAnimationDuration); ok {
		settings.AnimationDuration = value
	}
	settings.AnimateProgress = prefs.animate.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func formatMillis(value time.Duration) string {
	return strconv.FormatInt(value.Milliseconds(), 10)
}

func parseMillis(value string, allowZero bool, max time.Duration) (time.Duration, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 || (parsed == 0 && !allowZero) {
		return 0, false
	}
	duration := time.Duration(parsed) * time.Millisecond
	if duration > max {
		return 0, false
	}
	return duration, true
}
