package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// LevelEnv переменная окружения с уровнем логирования.
const LevelEnv = "CLOCK_APP_LOG_LEVEL"

var (
	mu   sync.RWMutex
	root = NewConsole(os.Stderr, zerolog.InfoLevel)
)

// NewConsole создает логгер с человекочитаемым выводом.
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return New(out, level)
}

func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel переводит строку вида "debug" в уровень zerolog.
// Пустая или неизвестная строка дает info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Init настраивает корневой логгер по переменной окружения.
func Init() {
	Set(NewConsole(os.Stderr, ParseLevel(os.Getenv(LevelEnv))))
}

func Set(l zerolog.Logger) {
	mu.Lock()
	root = l
	mu.Unlock()
}

// For возвращает логгер компонента.
func For(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", component).Logger()
}
