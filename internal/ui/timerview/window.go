package timerview

import (
	"strconv"

	"tickpad/internal/core/countdown"
	"tickpad/internal/core/keypad"
	"tickpad/internal/core/model"
	"tickpad/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Session is the part of the countdown session the view drives.
type Session interface {
	Type(digit int)
	Backspace()
	SelectTarget(target keypad.EditTarget)
	Start()
	Stop()
	Snapshot() countdown.Snapshot
}

// Window manages the countdown screen.
type Window struct {
	window      fyne.Window
	session     Session
	fields      map[keypad.EditTarget]*widget.Button
	keys        []*widget.Button
	startButton *widget.Button
	progress    *widget.ProgressBar
	animator    *animation.Engine
	snapshot    countdown.Snapshot
}

// New creates the countdown window for session.
func New(app fyne.App, session Session, animationConfig animation.Config) *Window {
	window := app.NewWindow("tickpad")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window:   window,
		session:  session,
		fields:   make(map[keypad.EditTarget]*widget.Button, 3),
		progress: widget.NewProgressBar(),
	}
	view.progress.TextFormatter = func() string {
		return strconv.Itoa(int(view.progress.Value*100)) + "%"
	}
	view.animator = animation.New(animationConfig, func(value float64) {
		fyne.Do(func() {
			view.progress.SetValue(value)
		})
	})

	timeRow := container.NewHBox(layout.NewSpacer())
	for index, target := range []keypad.EditTarget{keypad.TargetHour, keypad.TargetMinute, keypad.TargetSecond} {
		target := target
		field := widget.NewButton("00", func() {
			view.session.SelectTarget(target)
		})
		view.fields[target] = field
		if index > 0 {
			timeRow.Add(widget.NewLabelWithStyle(":", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
		}
		timeRow.Add(field)
	}
	timeRow.Add(layout.NewSpacer())

	grid := container.NewGridWithColumns(3)
	for digit := 1; digit <= 9; digit++ {
		grid.Add(view.digitKey(digit))
	}
	deleteKey := widget.NewButtonWithIcon("", theme.ContentUndoIcon(), view.handleDelete)
	view.keys = append(view.keys, deleteKey)
	grid.Add(deleteKey)
	grid.Add(view.digitKey(0))
	view.startButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), view.handleStartStop)
	grid.Add(view.startButton)

	window.SetContent(container.NewBorder(container.NewVBox(timeRow, view.progress), nil, nil, nil, grid))
	window.Resize(fyne.NewSize(320, 420))
	window.Canvas().SetOnTypedRune(view.handleRune)
	window.Canvas().SetOnTypedKey(view.handleKey)

	view.render(session.Snapshot())
	return view
}

// Window returns the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// SetAnimation updates progress easing options.
func (view *Window) SetAnimation(enabled bool, config animation.Config) {
	view.animator.SetEnabled(enabled)
	view.animator.SetDuration(config.Duration)
}

// Follow renders session events until the channel closes.
func (view *Window) Follow(events <-chan countdown.Event) {
	for event := range events {
		snapshot := countdown.Snapshot{
			Duration: event.Duration,
			Running:  event.Running,
			Progress: event.Progress,
			Target:   event.Target,
		}
		fyne.Do(func() {
			view.render(snapshot)
		})
	}
	view.animator.Stop()
}

func (view *Window) digitKey(digit int) *widget.Button {
	key := widget.NewButton(strconv.Itoa(digit), func() {
		view.session.Type(digit)
	})
	view.keys = append(view.keys, key)
	return key
}

func (view *Window) handleDelete() {
	view.session.Backspace()
}

func (view *Window) handleStartStop() {
	if view.snapshot.Running {
		view.session.Stop()
		return
	}
	view.session.Start()
}

func (view *Window) handleRune(r rune) {
	if r >= '0' && r <= '9' {
		view.session.Type(int(r - '0'))
	}
}

func (view *Window) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyBackspace, fyne.KeyDelete:
		view.handleDelete()
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
		view.handleStartStop()
	case fyne.KeyEscape:
		view.session.Stop()
	}
}

func (view *Window) render(snapshot countdown.Snapshot) {
	view.snapshot = snapshot
	view.setFieldUnsafe(keypad.TargetHour, snapshot.Duration.Hour)
	view.setFieldUnsafe(keypad.TargetMinute, snapshot.Duration.Minute)
	view.setFieldUnsafe(keypad.TargetSecond, snapshot.Duration.Second)

	for _, key := range view.keys {
		if snapshot.Running {
			key.Disable()
		} else {
			key.Enable()
		}
	}
	for target, field := range view.fields {
		if snapshot.Running {
			field.Disable()
		} else {
			field.Enable()
		}
		field.Importance = fieldImportance(target, snapshot)
		field.Refresh()
	}

	if snapshot.Running {
		view.startButton.SetIcon(theme.MediaStopIcon())
	} else {
		view.startButton.SetIcon(theme.MediaPlayIcon())
	}
	view.showProgress(snapshot)
}

// showProgress snaps the bar back when the session resets to idle and eases
// toward every other value.
func (view *Window) showProgress(snapshot countdown.Snapshot) {
	if !snapshot.Running && snapshot.Progress == 0 {
		if view.animator.Value() != 0 {
			view.animator.Jump(0)
		}
		return
	}
	view.animator.AnimateTo(snapshot.Progress)
}

func (view *Window) setFieldUnsafe(target keypad.EditTarget, value int) {
	view.fields[target].SetText(model.FormatTwoDigits(value))
}

// fieldImportance highlights the field under edit, or every field while the
// combined entry is active.
func fieldImportance(target keypad.EditTarget, snapshot countdown.Snapshot) widget.Importance {
	if snapshot.Running {
		return widget.MediumImportance
	}
	if snapshot.Target == keypad.TargetCombined || snapshot.Target == target {
		return widget.HighImportance
	}
	return widget.LowImportance
}
