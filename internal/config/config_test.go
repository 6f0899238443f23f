package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", fileName)
}

func TestLoadMissingFileCreatesDefaults(t *testing.T) {
	path := tempPath(t)

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.Created())
	assert.FileExists(t, path)

	for _, opt := range Schema {
		got, err := s.Get(opt.Section, opt.Key)
		require.NoError(t, err)
		assert.Equal(t, opt.Default, got, "%s.%s", opt.Section, opt.Key)
	}
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[Display\ntheme = Dark\nthis line has no delimiter\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.Created())
	assert.Equal(t, "Light", s.String(SectionDisplay, KeyTheme))
}

func TestLoadIgnoresUnknownAndResetsInvalid(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	content := `[Display]
theme = dark
time_12_hour_format = yes
date_format = ZZZ
favourite_color = teal

[Behavior]
clock_font_size = 99

[Mystery]
key = value
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Dark", s.String(SectionDisplay, KeyTheme))
	assert.True(t, s.Bool(SectionDisplay, KeyTime12Hour))
	assert.Equal(t, "DMY", s.String(SectionDisplay, KeyDateFormat))
	assert.Equal(t, 12, s.Int(SectionBehavior, KeyClockFontSize))

	_, err = s.Get(SectionDisplay, "favourite_color")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestSetThenGet(t *testing.T) {
	s := New(tempPath(t))

	testCases := []struct {
		section, key, value, want string
	}{
		{SectionGeneral, KeyLanguage, "French", "French"},
		{SectionDisplay, KeyTheme, "dark", "Dark"},
		{SectionDisplay, KeyTimezone, "America/New_York", "America/New_York"},
		{SectionDisplay, KeyTimeSeparator, ".", "."},
		{SectionDisplay, KeyTime12Hour, "on", "True"},
		{SectionBehavior, KeyClockFontSize, "30", "30"},
		{SectionNotifications, KeyNotificationType, "Sound", "Sound"},
		{SectionUpdates, KeyUpdateCheckTime, "07:45", "07:45"},
	}
	for _, tc := range testCases {
		t.Run(tc.section+"."+tc.key, func(t *testing.T) {
			require.NoError(t, s.Set(tc.section, tc.key, tc.value))
			got, err := s.Get(tc.section, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSetRejects(t *testing.T) {
	s := New(tempPath(t))

	assert.ErrorIs(t, s.Set("Display", "nope", "x"), ErrUnknownOption)
	assert.ErrorIs(t, s.Set("Nope", KeyTheme, "Dark"), ErrUnknownOption)
	assert.ErrorIs(t, s.Set(SectionDisplay, KeyTheme, "Sepia"), ErrInvalidValue)
	assert.ErrorIs(t, s.Set(SectionBehavior, KeyClockFontSize, "7"), ErrInvalidValue)
	assert.ErrorIs(t, s.Set(SectionUpdates, KeyUpdateCheckTime, "25:00"), ErrInvalidValue)
	assert.ErrorIs(t, s.Set(SectionDisplay, KeyTimezone, "  "), ErrInvalidValue)

	assert.Equal(t, "Light", s.String(SectionDisplay, KeyTheme))
}

func TestSaveReloadRoundTrip(t *testing.T) {
	path := tempPath(t)
	s, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(SectionGeneral, KeyLanguage, "German"))
	require.NoError(t, s.Set(SectionDisplay, KeyTheme, "Dark"))
	require.NoError(t, s.Set(SectionDisplay, KeyTimeSeparator, ":"))
	require.NoError(t, s.Set(SectionDisplay, KeyDateSeparator, ":"))
	require.NoError(t, s.Set(SectionBehavior, KeyClockFont, "Times New Roman"))
	require.NoError(t, s.Set(SectionUpdates, KeyUpdateChannel, "Beta"))
	require.NoError(t, s.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.values, reloaded.values)
	assert.Equal(t, s.Settings(), reloaded.Settings())
}

func TestReloadSkipsOwnWrites(t *testing.T) {
	path := tempPath(t)
	s, err := Load(path)
	require.NoError(t, err)

	changed, err := s.Reload()
	require.NoError(t, err)
	assert.False(t, changed)

	other, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, other.Set(SectionDisplay, KeyTheme, "Dark"))
	require.NoError(t, other.Save())

	changed, err = s.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Dark", s.Settings().Theme)
}

func TestSettingsSnapshot(t *testing.T) {
	s := New(tempPath(t))
	require.NoError(t, s.Set(SectionDisplay, KeyTime12Hour, "True"))
	require.NoError(t, s.Set(SectionBehavior, KeyClockFontSize, "20"))

	got := s.Settings()
	assert.Equal(t, "English", got.Language)
	assert.True(t, got.Use12Hour)
	assert.Equal(t, 20, got.ClockFontSize)
	assert.True(t, got.NotificationsEnabled)
	assert.Equal(t, "GitHub", got.UpdateSource)
}

func TestWatchReportsExternalEdits(t *testing.T) {
	path := tempPath(t)
	_, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, Watch(ctx, path, func() { calls.Add(1) }))

	require.NoError(t, os.WriteFile(path, []byte("[Display]\ntheme = Dark\n"), 0o644))
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 2*time.Second, 20*time.Millisecond)
}
