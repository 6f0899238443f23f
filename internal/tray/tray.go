package tray

import (
	"clock-app/internal/app"
	"clock-app/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Controller то, чем управляет меню трея.
type Controller interface {
	Show()
	OpenClock()
	OpenOptions()
	Quit()
}

type Tray struct {
	desk    desktop.App
	menu    *fyne.Menu
	show    *fyne.MenuItem
	clock   *fyne.MenuItem
	options *fyne.MenuItem
	quit    *fyne.MenuItem
}

// Setup ставит иконку и меню в системный трей.
// Возвращает false, если платформа трей не поддерживает.
func Setup(a fyne.App, c Controller) (*Tray, bool) {
	desk, ok := a.(desktop.App)
	if !ok {
		return nil, false
	}

	t := build(c)
	t.desk = desk
	desk.SetSystemTrayIcon(app.IconResource)
	desk.SetSystemTrayMenu(t.menu)
	return t, true
}

func build(c Controller) *Tray {
	t := &Tray{}
	t.show = fyne.NewMenuItem("", c.Show)
	t.clock = fyne.NewMenuItem("", c.OpenClock)
	t.options = fyne.NewMenuItem("", c.OpenOptions)
	t.quit = fyne.NewMenuItem("", c.Quit)
	// Свой пункт выхода: fyne не добавит второй.
	t.quit.IsQuit = true

	t.menu = fyne.NewMenu(app.AppName,
		t.show,
		fyne.NewMenuItemSeparator(),
		t.clock,
		t.options,
		fyne.NewMenuItemSeparator(),
		t.quit,
	)
	t.setLabels()
	return t
}

// Refresh переводит пункты меню на активный язык.
func (t *Tray) Refresh() {
	t.setLabels()
	t.desk.SetSystemTrayMenu(t.menu)
}

func (t *Tray) setLabels() {
	t.menu.Label = i18n.T(i18n.AppTitle)
	t.show.Label = i18n.T(i18n.TrayShow)
	t.clock.Label = i18n.T(i18n.MainMenuClock)
	t.options.Label = i18n.T(i18n.MainMenuOptions)
	t.quit.Label = i18n.T(i18n.MainMenuExit)
}
