package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sync"

	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localesFS embed.FS

// DefaultLanguage язык, на который откатываются отсутствующие переводы.
const DefaultLanguage = "English"

var languages = []struct {
	name string
	code string
}{
	{"English", "en"},
	{"Arabic", "ar"},
	{"French", "fr"},
	{"German", "de"},
	{"Italian", "it"},
	{"Portuguese", "pt"},
	{"Russian", "ru"},
	{"Spanish", "es"},
	{"Turkish", "tr"},
}

// Languages возвращает названия поддерживаемых языков.
func Languages() []string {
	out := make([]string, len(languages))
	for i, l := range languages {
		out[i] = l.name
	}
	return out
}

// CodeFor переводит название языка ("French") или код ("fr") в код ISO 639-1.
func CodeFor(lang string) (string, bool) {
	for _, l := range languages {
		if l.name == lang || l.code == lang {
			return l.code, true
		}
	}
	return "", false
}

func NameFor(code string) string {
	for _, l := range languages {
		if l.code == code {
			return l.name
		}
	}
	return DefaultLanguage
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(languages))
	for i, l := range languages {
		tags[i] = language.Make(l.code)
	}
	return language.NewMatcher(tags)
}()

// MatchSystem подбирает поддерживаемый язык для тега BCP 47 ("pt-BR", "de_DE").
func MatchSystem(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return DefaultLanguage
	}
	return languages[idx].name
}

// SystemLanguage язык системы или DefaultLanguage.
func SystemLanguage() string {
	tag, err := locale.GetLocale()
	if err != nil || tag == "" {
		return DefaultLanguage
	}
	return MatchSystem(tag)
}

// Resolver ищет переводы в словарях всех языков, встроенных в бинарник.
type Resolver struct {
	bundle *goi18n.Bundle

	mu         sync.RWMutex
	active     string
	localizers map[string]*goi18n.Localizer
}

func NewResolver() (*Resolver, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list translation files: %w", err)
	}
	for _, e := range entries {
		fileName := path.Join("locales", e.Name())
		data, err := localesFS.ReadFile(fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to read translation file %s: %w", fileName, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, fileName); err != nil {
			return nil, fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
		}
	}

	r := &Resolver{
		bundle:     bundle,
		localizers: make(map[string]*goi18n.Localizer),
	}
	r.SetLanguage(DefaultLanguage)
	return r, nil
}

// SetLanguage делает язык активным. Неизвестный язык заменяется английским.
func (r *Resolver) SetLanguage(lang string) {
	code, ok := CodeFor(lang)
	if !ok {
		code = "en"
	}
	r.mu.Lock()
	r.active = code
	r.mu.Unlock()
}

// Language название активного языка.
func (r *Resolver) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return NameFor(r.active)
}

func (r *Resolver) localizer(code string) *goi18n.Localizer {
	r.mu.RLock()
	l, ok := r.localizers[code]
	r.mu.RUnlock()
	if ok {
		return l
	}
	l = goi18n.NewLocalizer(r.bundle, code, "en")
	r.mu.Lock()
	r.localizers[code] = l
	r.mu.Unlock()
	return l
}

// Resolve возвращает перевод ключа на указанный язык.
// Порядок отката: язык, английский, сам ключ.
func (r *Resolver) Resolve(key, lang string) string {
	return r.resolve(key, lang, nil)
}

func (r *Resolver) resolve(key, lang string, data map[string]any) string {
	code, ok := CodeFor(lang)
	if !ok {
		code = "en"
	}
	msg, _ := r.localizer(code).Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if msg == "" {
		return key
	}
	return msg
}

// T переводит ключ на активный язык.
// Аргументы идут парами "имя, значение" и подставляются в плейсхолдеры {{.имя}}.
// Пример: T("notify_hour_msg", "time", "12:00") вернет "It is 12:00".
func (r *Resolver) T(key string, args ...interface{}) string {
	r.mu.RLock()
	code := r.active
	r.mu.RUnlock()

	var data map[string]any
	if len(args) > 0 && len(args)%2 == 0 {
		data = make(map[string]any, len(args)/2)
		for i := 0; i < len(args); i += 2 {
			data[fmt.Sprintf("%v", args[i])] = args[i+1]
		}
	}
	return r.resolve(key, code, data)
}

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver
	defaultErr      error
)

// Default общий резолвер процесса.
func Default() (*Resolver, error) {
	defaultOnce.Do(func() {
		defaultResolver, defaultErr = NewResolver()
	})
	return defaultResolver, defaultErr
}

// Load делает язык активным в общем резолвере.
// Если язык не найден или не указан, по умолчанию используется английский.
func Load(lang string) error {
	r, err := Default()
	if err != nil {
		return err
	}
	r.SetLanguage(lang)
	return nil
}

// T возвращает переведенную строку по ключу из общего резолвера.
// Если перевод не найден, возвращается ключ.
func T(key string, args ...interface{}) string {
	r, err := Default()
	if err != nil {
		return key
	}
	return r.T(key, args...)
}
