package ui

import (
	"context"
	"strconv"
	"strings"

	"clock-app/internal/app"
	"clock-app/internal/clock"
	"clock-app/internal/config"
	"clock-app/internal/i18n"
	"clock-app/internal/menu"
	"clock-app/internal/updater"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func (w *Window) backButton() *widget.Button {
	return widget.NewButtonWithIcon(i18n.T(i18n.CommonBack), theme.NavigateBackIcon(), func() {
		w.Dispatch(menu.Event{Kind: menu.Back})
	})
}

func (w *Window) optionsMenu() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(i18n.T(i18n.OptionsTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	box := container.NewVBox(title)
	for _, section := range config.Sections {
		box.Add(widget.NewButton(i18n.T(i18n.SectionKey(section)), func() {
			w.Dispatch(menu.Section(section))
		}))
	}
	box.Add(widget.NewButtonWithIcon(i18n.T(i18n.OptionsAppInfo), theme.InfoIcon(), func() {
		w.Dispatch(menu.Section(infoSection))
	}))
	box.Add(widget.NewSeparator())
	box.Add(widget.NewButtonWithIcon(i18n.T(i18n.OptionsCheckUpdates), theme.DownloadIcon(), w.CheckUpdates))
	box.Add(w.backButton())

	return container.NewCenter(box)
}

func (w *Window) sectionView(section string) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(i18n.T(i18n.SectionKey(section)), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	form := widget.NewForm()
	for _, opt := range config.OptionsIn(section) {
		form.Append(i18n.T(i18n.OptionKey(opt.Key)), w.optionWidget(opt, status))
	}
	if section == config.SectionDisplay {
		status.SetText(w.zoneStatus())
	}

	bottom := container.NewVBox(status)
	if section == config.SectionUpdates {
		bottom.Add(widget.NewButtonWithIcon(i18n.T(i18n.OptionsCheckUpdates), theme.DownloadIcon(), w.CheckUpdates))
	}
	bottom.Add(w.backButton())

	return container.NewBorder(title, bottom, nil, nil, container.NewVScroll(form))
}

// optionWidget элемент ввода по типу опции. Начальное значение ставится
// до назначения обработчика, чтобы не вызвать лишнее сохранение.
func (w *Window) optionWidget(opt config.Option, status *widget.Label) fyne.CanvasObject {
	current := w.Store.String(opt.Section, opt.Key)
	set := func(value string) {
		if err := w.apply(opt.Section, opt.Key, value); err != nil {
			status.SetText(i18n.T(i18n.OptionsInvalidValue, "value", value))
			return
		}
		status.SetText(w.zoneStatus())
	}

	switch opt.Kind {
	case config.KindEnum:
		sel := widget.NewSelect(opt.Choices, nil)
		sel.SetSelected(current)
		sel.OnChanged = set
		return sel

	case config.KindBool:
		chk := widget.NewCheck("", nil)
		chk.SetChecked(w.Store.Bool(opt.Section, opt.Key))
		chk.OnChanged = func(on bool) { set(strconv.FormatBool(on)) }
		return chk

	case config.KindInt:
		choices := make([]string, 0, opt.Max-opt.Min+1)
		for i := opt.Min; i <= opt.Max; i++ {
			choices = append(choices, strconv.Itoa(i))
		}
		sel := widget.NewSelect(choices, nil)
		sel.SetSelected(current)
		sel.OnChanged = set
		return sel
	}

	if opt.Key == config.KeyTimezone {
		return w.zoneWidget(current, set)
	}

	entry := widget.NewEntry()
	entry.SetText(current)
	entry.OnSubmitted = set
	return entry
}

// zoneWidget поле пояса со списком сокращений. Выбор из списка применяется
// сразу, набранное вручную имя IANA по Enter.
func (w *Window) zoneWidget(current string, set func(string)) *widget.SelectEntry {
	abbr := clock.Abbreviations()
	entry := widget.NewSelectEntry(abbr)
	entry.SetText(current)
	entry.OnChanged = func(value string) {
		for _, a := range abbr {
			if a == value {
				set(value)
				return
			}
		}
	}
	entry.OnSubmitted = set
	return entry
}

// infoSection раздел настроек без опций, только сведения о программе.
const infoSection = "AppInfo"

type infoRow struct {
	label, value string
}

func appInfoRows() []infoRow {
	return []infoRow{
		{i18n.T(i18n.InfoName), app.AppName},
		{i18n.T(i18n.InfoVersion), app.Version},
		{i18n.T(i18n.InfoVersionType), app.VersionType},
		{i18n.T(i18n.InfoAuthor), app.Author},
		{i18n.T(i18n.InfoRepo), app.RepoURL},
		{i18n.T(i18n.InfoLicense), app.License},
	}
}

func (w *Window) appInfoView() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(i18n.T(i18n.OptionsAppInfo), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := widget.NewForm()
	for _, r := range appInfoRows() {
		form.Append(r.label, widget.NewLabel(r.value))
	}
	repo := widget.NewButtonWithIcon(i18n.T(i18n.InfoOpenRepo), theme.ComputerIcon(), func() {
		w.openURL(app.RepoURL)
	})

	return container.NewBorder(title, container.NewVBox(repo, w.backButton()), nil, nil, form)
}

// zoneStatus сообщение о подмене часового пояса или пустая строка.
func (w *Window) zoneStatus() string {
	if w.Renderer.ZoneErr() == nil {
		return ""
	}
	return i18n.T(i18n.OptionsTimezoneFallback,
		"zone", w.Store.String(config.SectionDisplay, config.KeyTimezone),
		"used", w.Renderer.Zone())
}

// CheckUpdates ручная проверка обновлений.
func (w *Window) CheckUpdates() {
	req := updater.RequestFrom(w.Store.Settings())
	go func() {
		res := w.Checker.Check(context.Background(), req)
		fyne.Do(func() { w.ShowUpdate(res, true) })
	}()
}

// ShowUpdate показывает результат проверки. Автоматическая проверка
// сообщает только о найденном обновлении и только при включенных уведомлениях.
func (w *Window) ShowUpdate(res updater.Result, manual bool) {
	switch {
	case res.Err != nil:
		w.log.Warn().Err(res.Err).Bool("manual", manual).Msg("update check")
		if manual {
			dialog.ShowInformation(i18n.T(i18n.UpdateErrorTitle), i18n.T(i18n.UpdateErrorMsg, "error", res.Err), w.win)
		}
	case res.HasUpdate:
		if !manual && !w.Store.Bool(config.SectionNotifications, config.KeyNotifications) {
			w.log.Info().Str("latest", res.Latest).Msg("update available, notifications off")
			return
		}
		dialog.ShowConfirm(i18n.T(i18n.UpdateAvailableTitle), updateMessage(res),
			func(ok bool) {
				if ok {
					w.openURL(res.URL)
				}
			}, w.win)
	case manual:
		dialog.ShowInformation(i18n.T(i18n.UpdateUpToDateTitle), i18n.T(i18n.UpdateUpToDateMsg, "version", res.Current), w.win)
	}
}

const maxNotes = 500

// updateMessage текст о новой версии с заметками релиза, обрезанными до maxNotes символов.
func updateMessage(res updater.Result) string {
	msg := i18n.T(i18n.UpdateAvailableMsg, "latest", res.Latest)
	notes := []rune(strings.TrimSpace(res.Notes))
	if len(notes) == 0 {
		return msg
	}
	text := string(notes)
	if len(notes) > maxNotes {
		text = string(notes[:maxNotes]) + "..."
	}
	return msg + "\n\n" + i18n.T(i18n.UpdateNotes, "notes", text)
}
