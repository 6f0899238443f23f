package ui

import (
	"net/url"
	"time"

	"clock-app/internal/app"
	"clock-app/internal/clock"
	"clock-app/internal/config"
	"clock-app/internal/i18n"
	"clock-app/internal/logger"
	"clock-app/internal/menu"
	"clock-app/internal/notification"
	"clock-app/internal/updater"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

// Deps то, с чем работает окно.
type Deps struct {
	Store      *config.Store
	Renderer   *clock.Renderer
	Layout     *clock.Layout
	LayoutPath string
	Dispatcher *notification.Dispatcher
	Checker    *updater.Checker
	// OnExit вызывается перед завершением приложения.
	OnExit func()
	// Now источник времени для часов, по умолчанию time.Now.
	Now func() time.Time
}

type Window struct {
	Deps

	app fyne.App
	win fyne.Window
	nav *menu.Navigator

	clock       *clockView
	mainButtons mainMenuButtons

	hideOnClose bool
	langHooks   []func()
	log         zerolog.Logger
}

func New(a fyne.App, d Deps) *Window {
	if d.Now == nil {
		d.Now = time.Now
	}
	w := &Window{
		Deps: d,
		app:  a,
		log:  logger.For("ui"),
	}
	w.nav = menu.NewNavigator(w.onTransition)

	w.win = a.NewWindow(app.AppName)
	w.win.SetIcon(app.IconResource)
	w.win.Resize(fyne.NewSize(440, 540))
	w.win.SetCloseIntercept(w.onClose)

	w.ApplySettings()
	w.show(w.nav.State())
	return w
}

func (w *Window) Window() fyne.Window { return w.win }

func (w *Window) State() menu.State { return w.nav.State() }

// SetHideOnClose: закрытие окна прячет его в трей вместо выхода.
func (w *Window) SetHideOnClose(hide bool) { w.hideOnClose = hide }

// OnLanguageChange регистрирует обработчик смены языка.
func (w *Window) OnLanguageChange(f func()) {
	w.langHooks = append(w.langHooks, f)
}

func (w *Window) Show() {
	w.win.Show()
	w.win.RequestFocus()
}

// ShowAndRun показывает окно и запускает цикл событий.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

// Dispatch передает событие навигатору. Недопустимые переходы только логируются.
func (w *Window) Dispatch(e menu.Event) {
	if _, err := w.nav.Dispatch(e); err != nil {
		w.log.Warn().Err(err).Msg("navigation")
	}
}

// Home возвращается в главное меню из любого экрана.
func (w *Window) Home() {
	for {
		s := w.nav.State()
		if s.Kind == menu.MainMenu || s.Kind == menu.Exit {
			return
		}
		if _, err := w.nav.Dispatch(menu.Event{Kind: menu.Back}); err != nil {
			w.log.Error().Err(err).Str("state", s.String()).Msg("cannot go back")
			return
		}
	}
}

func (w *Window) OpenClock() {
	w.Show()
	w.Home()
	w.Dispatch(menu.Event{Kind: menu.OpenClock})
}

func (w *Window) OpenOptions() {
	w.Show()
	w.Home()
	w.Dispatch(menu.Event{Kind: menu.OpenOptions})
}

func (w *Window) Quit() {
	w.Dispatch(menu.Event{Kind: menu.Quit})
}

func (w *Window) onClose() {
	if w.hideOnClose {
		w.win.Hide()
		return
	}
	w.Quit()
}

func (w *Window) onTransition(from, to menu.State) {
	w.log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("transition")
	if from.Kind == menu.ClockView && w.clock != nil {
		w.clock.Stop()
	}
	if to.Kind == menu.Exit {
		w.exit()
		return
	}
	w.show(to)
}

// show строит экран состояния заново, поэтому подписи всегда на текущем языке.
func (w *Window) show(s menu.State) {
	var content fyne.CanvasObject
	switch s.Kind {
	case menu.MainMenu:
		content = w.mainMenu()
	case menu.ClockView:
		if w.clock != nil {
			w.clock.Stop()
		}
		w.clock = newClockView(w)
		w.clock.Start()
		content = w.clock.content
	case menu.OptionsMenu:
		content = w.optionsMenu()
	case menu.OptionsSection:
		if s.Section == infoSection {
			content = w.appInfoView()
			break
		}
		content = w.sectionView(s.Section)
	default:
		return
	}
	w.win.SetContent(content)
}

// ApplySettings применяет тему, язык и часовой пояс из текущих настроек.
func (w *Window) ApplySettings() {
	st := w.Store.Settings()
	w.app.Settings().SetTheme(ThemeFor(st.Theme))
	w.setLanguage(st.Language)
	_ = w.Renderer.SetZone(st.Timezone)
}

func (w *Window) setLanguage(lang string) {
	if err := i18n.Load(lang); err != nil {
		w.log.Error().Err(err).Str("language", lang).Msg("load translations")
	}
	w.win.SetTitle(i18n.T(i18n.AppTitle))
	for _, f := range w.langHooks {
		f()
	}
}

// ExternalChange перечитывает файл настроек после правки снаружи.
// Вызывается в потоке интерфейса.
func (w *Window) ExternalChange() {
	changed, err := w.Store.Reload()
	if err != nil {
		w.log.Error().Err(err).Msg("reload config")
		return
	}
	if !changed {
		return
	}
	w.log.Info().Msg("config changed on disk")
	w.ApplySettings()
	w.show(w.nav.State())
}

// apply меняет одну опцию, сохраняет файл и применяет изменение.
func (w *Window) apply(section, key, value string) error {
	if err := w.Store.Set(section, key, value); err != nil {
		return err
	}
	w.save()

	switch key {
	case config.KeyTheme:
		w.app.Settings().SetTheme(ThemeFor(w.Store.String(section, key)))
	case config.KeyLanguage:
		w.setLanguage(w.Store.String(section, key))
		w.show(w.nav.State())
	case config.KeyTimezone:
		_ = w.Renderer.SetZone(w.Store.String(section, key))
	}
	return nil
}

func (w *Window) save() {
	if err := w.Store.Save(); err != nil {
		w.log.Error().Err(err).Msg("save config")
		w.Dispatcher.Error(i18n.T(i18n.ErrorSave, "error", err))
	}
}

func (w *Window) saveLayout() {
	if w.LayoutPath == "" {
		return
	}
	if err := w.Layout.Save(w.LayoutPath); err != nil {
		w.log.Error().Err(err).Msg("save layout")
		w.Dispatcher.Error(i18n.T(i18n.ErrorSave, "error", err))
	}
}

func (w *Window) exit() {
	w.log.Info().Msg("exit")
	w.save()
	w.saveLayout()
	if w.OnExit != nil {
		w.OnExit()
	}
	w.app.Quit()
}

func (w *Window) openURL(raw string) {
	u, err := url.Parse(raw)
	if err != nil {
		w.log.Warn().Err(err).Str("url", raw).Msg("bad url")
		return
	}
	if err := w.app.OpenURL(u); err != nil {
		w.log.Warn().Err(err).Str("url", raw).Msg("open url")
	}
}
