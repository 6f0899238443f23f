package i18n

import "strings"

// Ключи сообщений интерфейса.
const (
	AppTitle = "app_title"

	MainMenuLabel   = "main_menu_label"
	MainMenuClock   = "main_menu_clock"
	MainMenuOptions = "main_menu_options"
	MainMenuExit    = "main_menu_exit"
	CommonBack      = "common_back"

	OptionsTitle            = "options_title"
	OptionsInvalidValue     = "options_invalid_value"
	OptionsTimezoneFallback = "options_timezone_fallback"
	OptionsCheckUpdates     = "options_check_updates"
	OptionsAppInfo          = "options_app_info"

	InfoName        = "info_name"
	InfoVersion     = "info_version"
	InfoVersionType = "info_version_type"
	InfoAuthor      = "info_author"
	InfoRepo        = "info_repo"
	InfoLicense     = "info_license"
	InfoOpenRepo    = "info_open_repo"

	ClockConsoleHint      = "clock_console_hint"
	ConsoleUnknown        = "console_unknown"
	ConsoleUnknownElement = "console_unknown_element"
	ConsoleBadNumber      = "console_bad_number"

	NotifyHourTitle = "notify_hour_title"
	NotifyHourMsg   = "notify_hour_msg"

	UpdateAvailableTitle = "update_available_title"
	UpdateAvailableMsg   = "update_available_msg"
	UpdateNotes          = "update_notes"
	UpdateUpToDateTitle  = "update_up_to_date_title"
	UpdateUpToDateMsg    = "update_up_to_date_msg"
	UpdateErrorTitle     = "update_error_title"
	UpdateErrorMsg       = "update_error_msg"

	TrayShow   = "tray_show"
	ErrorTitle = "error_title"
	ErrorSave  = "error_save"
)

// SectionKey ключ заголовка секции настроек ("Display" -> "section_display").
func SectionKey(section string) string {
	return "section_" + strings.ToLower(section)
}

// OptionKey ключ подписи опции ("clock_font" -> "opt_clock_font").
func OptionKey(key string) string {
	return "opt_" + key
}

// UIKeys все ключи, которые запрашивает интерфейс, кроме ключей секций и опций.
var UIKeys = []string{
	AppTitle,
	MainMenuLabel, MainMenuClock, MainMenuOptions, MainMenuExit, CommonBack,
	OptionsTitle, OptionsInvalidValue, OptionsTimezoneFallback, OptionsCheckUpdates, OptionsAppInfo,
	InfoName, InfoVersion, InfoVersionType, InfoAuthor, InfoRepo, InfoLicense, InfoOpenRepo,
	ClockConsoleHint, ConsoleUnknown, ConsoleUnknownElement, ConsoleBadNumber,
	NotifyHourTitle, NotifyHourMsg,
	UpdateAvailableTitle, UpdateAvailableMsg, UpdateNotes, UpdateUpToDateTitle, UpdateUpToDateMsg,
	UpdateErrorTitle, UpdateErrorMsg,
	TrayShow, ErrorTitle, ErrorSave,
}
