package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"

	"clock-app/internal/logger"
)

const (
	dirName  = "clock-app"
	fileName = "clock_app.ini"
)

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrInvalidValue  = errors.New("invalid value")
)

var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:  "=",
	IgnoreInlineComment: true,
}

// Store хранит настройки в памяти и синхронизирует их с INI-файлом.
// Не потокобезопасен: читается и пишется только из UI-потока.
type Store struct {
	path    string
	values  map[string]map[string]string
	created bool
	written []byte
	log     zerolog.Logger
}

// DefaultPath путь к файлу настроек в каталоге конфигурации пользователя.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, dirName, fileName), nil
}

// New создает хранилище со значениями по умолчанию, не обращаясь к диску.
func New(path string) *Store {
	s := &Store{
		path: path,
		log:  logger.For("config"),
	}
	s.ResetDefaults()
	return s
}

// Load читает файл настроек.
// Если файла нет, он создается со значениями по умолчанию.
// Поврежденный файл не считается ошибкой: используются значения по умолчанию.
func Load(path string) (*Store, error) {
	s := New(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info().Str("path", path).Msg("config file not found, creating defaults")
		if err := s.Save(); err != nil {
			return nil, err
		}
		s.created = true
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := s.apply(data); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("config file is corrupt, using defaults")
		s.ResetDefaults()
		return s, nil
	}
	s.written = data
	s.log.Debug().Str("path", path).Msg("config loaded")
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Created сообщает, что файл был создан при загрузке (первый запуск).
func (s *Store) Created() bool { return s.created }

func (s *Store) ResetDefaults() {
	s.values = make(map[string]map[string]string, len(Sections))
	for _, opt := range Schema {
		if s.values[opt.Section] == nil {
			s.values[opt.Section] = make(map[string]string)
		}
		s.values[opt.Section][opt.Key] = opt.Default
	}
}

// apply разбирает INI и переносит известные ключи.
// Неизвестные ключи игнорируются, недопустимые значения сбрасываются.
func (s *Store) apply(data []byte) error {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	s.ResetDefaults()
	for _, sec := range f.Sections() {
		for _, key := range sec.Keys() {
			opt, ok := Lookup(sec.Name(), key.Name())
			if !ok {
				if sec.Name() != ini.DefaultSection {
					s.log.Debug().Str("section", sec.Name()).Str("key", key.Name()).Msg("ignoring unknown option")
				}
				continue
			}
			v, err := opt.Normalize(key.String())
			if err != nil {
				s.log.Warn().Err(err).Msg("resetting option to default")
				continue
			}
			s.values[opt.Section][opt.Key] = v
		}
	}
	return nil
}

// Reload перечитывает файл. changed == false, если содержимое совпадает
// с последней записью (например, событие от собственного Save).
func (s *Store) Reload() (changed bool, err error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, fmt.Errorf("read config %s: %w", s.path, err)
	}
	if bytes.Equal(data, s.written) {
		return false, nil
	}
	if err := s.apply(data); err != nil {
		return false, err
	}
	s.written = data
	return true, nil
}

func (s *Store) Get(section, key string) (string, error) {
	if _, ok := Lookup(section, key); !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownOption, section, key)
	}
	return s.values[section][key], nil
}

// Set проверяет значение по схеме и сохраняет его в памяти.
// На диск изменения попадают только после Save.
func (s *Store) Set(section, key, value string) error {
	opt, ok := Lookup(section, key)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownOption, section, key)
	}
	v, err := opt.Normalize(value)
	if err != nil {
		return err
	}
	s.values[section][key] = v
	return nil
}

func (s *Store) String(section, key string) string {
	v, _ := s.Get(section, key)
	return v
}

func (s *Store) Bool(section, key string) bool {
	b, _ := parseBool(s.String(section, key))
	return b
}

func (s *Store) Int(section, key string) int {
	n, err := strconv.Atoi(s.String(section, key))
	if err != nil {
		opt, _ := Lookup(section, key)
		n, _ = strconv.Atoi(opt.Default)
	}
	return n
}

// Render формирует содержимое файла: все секции в порядке схемы.
func (s *Store) Render() ([]byte, error) {
	f := ini.Empty(loadOptions)
	for _, name := range Sections {
		sec, err := f.NewSection(name)
		if err != nil {
			return nil, err
		}
		for _, opt := range OptionsIn(name) {
			if _, err := sec.NewKey(opt.Key, s.values[name][opt.Key]); err != nil {
				return nil, err
			}
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save атомарно записывает все секции в файл.
func (s *Store) Save() error {
	data, err := s.Render()
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config %s: %w", s.path, err)
	}
	s.written = data
	s.log.Debug().Str("path", s.path).Msg("config saved")
	return nil
}
