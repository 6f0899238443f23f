package config

// Settings типизированный снимок настроек, который читают представления.
type Settings struct {
	Language string

	Theme         string
	Timezone      string
	TimeSeparator string
	DateSeparator string
	Use12Hour     bool
	DateOrder     string

	ClockAnimation bool
	ClockType      string
	ClockColor     string
	ClockFont      string
	ClockFontSize  int

	NotificationsEnabled bool
	NotificationType     string

	UpdateOption    string
	UpdateChannel   string
	UpdateFrequency string
	UpdateCheckTime string
	UpdateSource    string
}

func (s *Store) Settings() Settings {
	return Settings{
		Language: s.String(SectionGeneral, KeyLanguage),

		Theme:         s.String(SectionDisplay, KeyTheme),
		Timezone:      s.String(SectionDisplay, KeyTimezone),
		TimeSeparator: s.String(SectionDisplay, KeyTimeSeparator),
		DateSeparator: s.String(SectionDisplay, KeyDateSeparator),
		Use12Hour:     s.Bool(SectionDisplay, KeyTime12Hour),
		DateOrder:     s.String(SectionDisplay, KeyDateFormat),

		ClockAnimation: s.Bool(SectionBehavior, KeyClockAnimation),
		ClockType:      s.String(SectionBehavior, KeyClockType),
		ClockColor:     s.String(SectionBehavior, KeyClockColor),
		ClockFont:      s.String(SectionBehavior, KeyClockFont),
		ClockFontSize:  s.Int(SectionBehavior, KeyClockFontSize),

		NotificationsEnabled: s.Bool(SectionNotifications, KeyNotifications),
		NotificationType:     s.String(SectionNotifications, KeyNotificationType),

		UpdateOption:    s.String(SectionUpdates, KeyUpdateOption),
		UpdateChannel:   s.String(SectionUpdates, KeyUpdateChannel),
		UpdateFrequency: s.String(SectionUpdates, KeyUpdateFrequency),
		UpdateCheckTime: s.String(SectionUpdates, KeyUpdateCheckTime),
		UpdateSource:    s.String(SectionUpdates, KeyUpdateSource),
	}
}
