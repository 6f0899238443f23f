package main

import (
	"context"
	"os"

	"clock-app/internal/app"
	"clock-app/internal/clock"
	"clock-app/internal/config"
	"clock-app/internal/i18n"
	"clock-app/internal/logger"
	"clock-app/internal/notification"
	"clock-app/internal/tray"
	"clock-app/internal/ui"
	"clock-app/internal/updater"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
)

func main() {
	logger.Init()
	log := logger.For("main")
	log.Info().Str("version", app.Version).Msg("starting " + app.AppName)

	path, err := config.DefaultPath()
	if err != nil {
		fatal(log, err)
	}
	store, err := config.Load(path)
	if err != nil {
		fatal(log, err)
	}

	// Первый запуск: язык берем из системы
	if store.Created() {
		lang := i18n.SystemLanguage()
		if err := store.Set(config.SectionGeneral, config.KeyLanguage, lang); err == nil {
			if err := store.Save(); err != nil {
				fatal(log, err)
			}
		}
		log.Info().Str("language", lang).Msg("first run")
	}

	layoutPath := clock.LayoutPath(path)
	layout, err := clock.LoadLayout(layoutPath)
	if err != nil {
		log.Warn().Err(err).Msg("clock layout ignored")
	}

	notification.Init(app.AppName)
	dispatcher := notification.New(&notification.Desktop{})
	renderer := clock.NewRenderer()
	checker := updater.New(app.RepoURL, app.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := fyneapp.NewWithID(app.AppID)
	a.SetIcon(app.IconResource)

	w := ui.New(a, ui.Deps{
		Store:      store,
		Renderer:   renderer,
		Layout:     layout,
		LayoutPath: layoutPath,
		Dispatcher: dispatcher,
		Checker:    checker,
		OnExit:     cancel,
	})

	if t, ok := tray.Setup(a, w); ok {
		w.SetHideOnClose(true)
		w.OnLanguageChange(t.Refresh)
	}

	if err := config.Watch(ctx, path, func() { fyne.Do(w.ExternalChange) }); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}

	hourly := &notification.Scheduler{
		Dispatcher: dispatcher,
		Zone:       renderer,
		Settings:   store.Settings,
		Do:         fyne.Do,
	}
	go hourly.Run(ctx)

	updates := &updater.Scheduler{
		Checker:  checker,
		Settings: store.Settings,
		OnResult: func(r updater.Result) { w.ShowUpdate(r, false) },
		Do:       fyne.Do,
	}
	go updates.Run(ctx)

	w.ShowAndRun()
	log.Info().Msg("stopped")
}

// fatal показывает ошибку запуска в системном окне и завершает процесс.
func fatal(log zerolog.Logger, err error) {
	log.Error().Err(err).Msg("startup failed")
	_ = zenity.Error(err.Error(), zenity.Title(app.AppName))
	os.Exit(1)
}
