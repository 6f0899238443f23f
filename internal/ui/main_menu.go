package ui

import (
	"clock-app/internal/i18n"
	"clock-app/internal/menu"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type mainMenuButtons struct {
	clock, options, exit *widget.Button
}

func (w *Window) mainMenu() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(i18n.T(i18n.MainMenuLabel), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	b := mainMenuButtons{
		clock: widget.NewButtonWithIcon(i18n.T(i18n.MainMenuClock), theme.HistoryIcon(), func() {
			w.Dispatch(menu.Event{Kind: menu.OpenClock})
		}),
		options: widget.NewButtonWithIcon(i18n.T(i18n.MainMenuOptions), theme.SettingsIcon(), func() {
			w.Dispatch(menu.Event{Kind: menu.OpenOptions})
		}),
		exit: widget.NewButtonWithIcon(i18n.T(i18n.MainMenuExit), theme.CancelIcon(), func() {
			w.Dispatch(menu.Event{Kind: menu.Quit})
		}),
	}
	b.clock.Importance = widget.HighImportance
	b.exit.Importance = widget.DangerImportance
	w.mainButtons = b

	return container.NewCenter(container.NewVBox(
		title,
		b.clock,
		b.options,
		b.exit,
	))
}
