package i18n

import (
	"encoding/json"
	"testing"

	"clock-app/internal/config"
)

func TestTranslation(t *testing.T) {
	// Загружаем русский словарь
	err := Load("ru")
	if err != nil {
		t.Fatalf("Не удалось загрузить файл перевода ru.json: %v", err)
	}
	defer Load(DefaultLanguage)

	testCases := []struct {
		name     string
		key      string
		args     []interface{}
		expected string
	}{
		{
			name:     "Простой перевод без аргументов",
			key:      MainMenuExit,
			args:     nil,
			expected: "Выход",
		},
		{
			name:     "Перевод с одним аргументом",
			key:      NotifyHourMsg,
			args:     []interface{}{"time", "12:00"},
			expected: "Сейчас 12:00",
		},
		{
			name:     "Перевод с несколькими аргументами",
			key:      OptionsTimezoneFallback,
			args:     []interface{}{"zone", "Mars/Olympus", "used", "UTC"},
			expected: "Неизвестный часовой пояс Mars/Olympus, показано UTC",
		},
		{
			name:     "Несуществующий ключ",
			key:      "nonExistentKey",
			args:     nil,
			expected: "nonExistentKey",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := T(tc.key, tc.args...)
			if got != tc.expected {
				t.Errorf("Ожидали получить '%s', но получили '%s'", tc.expected, got)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("Загрузка языка по умолчанию", func(t *testing.T) {
		err := Load("non_existent_lang")
		if err != nil {
			t.Fatalf("Не удалось загрузить язык по умолчанию: %v", err)
		}

		expected := "Exit"
		got := T(MainMenuExit)
		if got != expected {
			t.Errorf("Ожидали '%s' из файла по умолчанию, но получили '%s'", expected, got)
		}
	})

	t.Run("Загрузка по названию языка", func(t *testing.T) {
		if err := Load("German"); err != nil {
			t.Fatal(err)
		}
		defer Load(DefaultLanguage)

		if got := T(MainMenuOptions); got != "Optionen" {
			t.Errorf("Ожидали 'Optionen', но получили '%s'", got)
		}
	})
}

// Все ключи интерфейса должны быть в каждом словаре и переводиться в непустую строку.
func TestEveryLanguageCoversUIKeys(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatal(err)
	}

	keys := append([]string{}, UIKeys...)
	for _, section := range config.Sections {
		keys = append(keys, SectionKey(section))
	}
	for _, opt := range config.Schema {
		keys = append(keys, OptionKey(opt.Key))
	}

	for _, lang := range Languages() {
		code, _ := CodeFor(lang)
		data, err := localesFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			t.Fatalf("%s: нет файла перевода: %v", lang, err)
		}
		var dict map[string]string
		if err := json.Unmarshal(data, &dict); err != nil {
			t.Fatalf("%s: %v", lang, err)
		}

		for _, key := range keys {
			if dict[key] == "" {
				t.Errorf("%s: нет перевода для %q", lang, key)
			}
			if got := r.Resolve(key, lang); got == "" || got == key {
				t.Errorf("%s: Resolve(%q) = %q", lang, key, got)
			}
		}
	}
}

func TestResolveFallsBackToKey(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve("no_such_key", "French"); got != "no_such_key" {
		t.Errorf("Ожидали ключ, получили %q", got)
	}
	if got := r.Resolve(MainMenuClock, "Klingon"); got != "Clock" {
		t.Errorf("Ожидали английский перевод, получили %q", got)
	}
}

func TestMatchSystem(t *testing.T) {
	testCases := map[string]string{
		"en-US":   "English",
		"pt-BR":   "Portuguese",
		"de-AT":   "German",
		"tr":      "Turkish",
		"ja-JP":   "English",
		"garbage": "English",
		"":        "English",
	}
	for tag, want := range testCases {
		if got := MatchSystem(tag); got != want {
			t.Errorf("MatchSystem(%q) = %q, want %q", tag, got, want)
		}
	}
}
