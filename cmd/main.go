package main

import (
	"errors"
	"log"

	"tickpad/internal/core/countdown"
	"tickpad/internal/platform"
	"tickpad/internal/storage"
	"tickpad/internal/ui/animation"
	"tickpad/internal/ui/preferences"
	"tickpad/internal/ui/timerview"
	"tickpad/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "tickpad"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return
		}
		log.Fatalf("single instance: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("com.tickpad.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	session := countdown.New(settings.CountdownConfig())
	defer session.Close()

	view := timerview.New(fyneApp, session, animationConfig(settings))
	view.SetAnimation(settings.AnimateProgress, animationConfig(settings))
	view.Window().SetMaster()

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		session.UpdateConfig(settings.CountdownConfig())
		view.SetAnimation(settings.AnimateProgress, animationConfig(settings))
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnPreferences: prefsWindow.Show,
			OnToggleStart: func() {
				if session.Running() {
					session.Stop()
					return
				}
				session.Start()
			},
			OnQuit: func() {
				session.Close()
				fyneApp.Quit()
			},
		})
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	go view.Follow(session.Subscribe(64))
	if trayManager != nil {
		go followTray(session.Subscribe(8), trayManager)
	}

	view.Show()
	fyneApp.Run()
}

func followTray(events <-chan countdown.Event, trayManager *tray.Manager) {
	for event := range events {
		event := event
		fyne.Do(func() {
			trayManager.SetRunning(event.Running)
			trayManager.SetStatus(tray.StatusText(event.Running, event.Duration.String()))
		})
	}
}

func animationConfig(settings preferences.Settings) animation.Config {
	config := animation.DefaultConfig()
	config.Duration = settings.AnimationDuration
	return config
}
