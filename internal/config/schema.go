package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Секции файла настроек в порядке записи.
const (
	SectionGeneral       = "General"
	SectionDisplay       = "Display"
	SectionBehavior      = "Behavior"
	SectionNotifications = "Notifications"
	SectionUpdates       = "Updates"
)

var Sections = []string{
	SectionGeneral,
	SectionDisplay,
	SectionBehavior,
	SectionNotifications,
	SectionUpdates,
}

// Ключи опций.
const (
	KeyLanguage         = "language"
	KeyTheme            = "theme"
	KeyTimezone         = "timezone"
	KeyTimeSeparator    = "time_separator"
	KeyDateSeparator    = "date_separator"
	KeyTime12Hour       = "time_12_hour_format"
	KeyDateFormat       = "date_format"
	KeyClockAnimation   = "clock_animation"
	KeyClockType        = "clock_type"
	KeyClockColor       = "clock_color"
	KeyClockFont        = "clock_font"
	KeyClockFontSize    = "clock_font_size"
	KeyNotifications    = "notifications"
	KeyNotificationType = "notification_type"
	KeyUpdateOption     = "update_option"
	KeyUpdateChannel    = "update_channel"
	KeyUpdateFrequency  = "update_check_frequency"
	KeyUpdateCheckTime  = "update_check_time"
	KeyUpdateSource     = "update_source"
)

type Kind int

const (
	KindEnum Kind = iota
	KindBool
	KindInt
	KindText
)

// Option описывает одну настройку: тип, значение по умолчанию и допустимые значения.
type Option struct {
	Section string
	Key     string
	Kind    Kind
	Default string
	Choices []string
	Min     int
	Max     int
	// Validate дополнительная проверка для KindText.
	Validate func(string) bool
}

var checkTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Schema все известные опции. Порядок определяет порядок в файле и в меню.
var Schema = []Option{
	{Section: SectionGeneral, Key: KeyLanguage, Kind: KindEnum, Default: "English",
		Choices: []string{"English", "Arabic", "French", "German", "Italian", "Portuguese", "Russian", "Spanish", "Turkish"}},

	{Section: SectionDisplay, Key: KeyTheme, Kind: KindEnum, Default: "Light", Choices: []string{"Light", "Dark"}},
	{Section: SectionDisplay, Key: KeyTimezone, Kind: KindText, Default: "UTC",
		Validate: func(s string) bool { return strings.TrimSpace(s) != "" }},
	{Section: SectionDisplay, Key: KeyTimeSeparator, Kind: KindEnum, Default: ":", Choices: []string{":", "-", "."}},
	{Section: SectionDisplay, Key: KeyDateSeparator, Kind: KindEnum, Default: "/", Choices: []string{"/", "-", ".", ":"}},
	{Section: SectionDisplay, Key: KeyTime12Hour, Kind: KindBool, Default: "False"},
	{Section: SectionDisplay, Key: KeyDateFormat, Kind: KindEnum, Default: "DMY", Choices: []string{"DMY", "MDY", "YMD"}},

	{Section: SectionBehavior, Key: KeyClockAnimation, Kind: KindBool, Default: "True"},
	{Section: SectionBehavior, Key: KeyClockType, Kind: KindEnum, Default: "Digital", Choices: []string{"Analog", "Digital"}},
	{Section: SectionBehavior, Key: KeyClockColor, Kind: KindEnum, Default: "Black",
		Choices: []string{"Red", "Green", "Blue", "Yellow", "Purple", "Orange", "Pink", "Brown", "Gray", "Black", "White"}},
	{Section: SectionBehavior, Key: KeyClockFont, Kind: KindEnum, Default: "Arial",
		Choices: []string{"Arial", "Times New Roman", "Courier New", "Verdana"}},
	{Section: SectionBehavior, Key: KeyClockFontSize, Kind: KindInt, Default: "12", Min: 8, Max: 30},

	{Section: SectionNotifications, Key: KeyNotifications, Kind: KindBool, Default: "True"},
	{Section: SectionNotifications, Key: KeyNotificationType, Kind: KindEnum, Default: "Popup",
		Choices: []string{"Vibrate", "Sound", "Popup"}},

	{Section: SectionUpdates, Key: KeyUpdateOption, Kind: KindEnum, Default: "Automatic", Choices: []string{"Automatic", "Manual"}},
	{Section: SectionUpdates, Key: KeyUpdateChannel, Kind: KindEnum, Default: "Stable", Choices: []string{"Stable", "Beta", "Dev"}},
	{Section: SectionUpdates, Key: KeyUpdateFrequency, Kind: KindEnum, Default: "Daily", Choices: []string{"Daily", "Weekly", "Monthly"}},
	{Section: SectionUpdates, Key: KeyUpdateCheckTime, Kind: KindText, Default: "12:00", Validate: checkTimeRe.MatchString},
	{Section: SectionUpdates, Key: KeyUpdateSource, Kind: KindEnum, Default: "GitHub", Choices: []string{"GitHub", "Local"}},
}

// Lookup ищет опцию в схеме.
func Lookup(section, key string) (Option, bool) {
	for _, opt := range Schema {
		if opt.Section == section && opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

// OptionsIn возвращает опции секции в порядке схемы.
func OptionsIn(section string) []Option {
	var out []Option
	for _, opt := range Schema {
		if opt.Section == section {
			out = append(out, opt)
		}
	}
	return out
}

// Normalize приводит значение к канонической записи или возвращает ErrInvalidValue.
// Для перечислений регистр не важен, логические значения пишутся как True/False.
func (o Option) Normalize(value string) (string, error) {
	v := strings.TrimSpace(value)
	switch o.Kind {
	case KindEnum:
		for _, c := range o.Choices {
			if strings.EqualFold(c, v) {
				return c, nil
			}
		}
	case KindBool:
		if b, ok := parseBool(v); ok {
			return formatBool(b), nil
		}
	case KindInt:
		n, err := strconv.Atoi(v)
		if err == nil && n >= o.Min && n <= o.Max {
			return strconv.Itoa(n), nil
		}
	case KindText:
		if o.Validate == nil || o.Validate(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s.%s = %q", ErrInvalidValue, o.Section, o.Key, value)
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	}
	return false, false
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
