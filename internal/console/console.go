// Package console разбирает команды консоли часов и применяет их к раскладке.
package console

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"clock-app/internal/clock"
)

const Help = `Available commands:
  list_commands
    Show this list of commands

  clock.analog_animation = true|false
    Toggle analog clock hand animation

  clock.{element}.scale = value
    Set scale directly (1.0 = default, 0.1..5)

  clock.{element}.rotate = degrees
    Add rotation offset (degrees)

  clock.{element}.reset
    Drop scale and rotation of the element

  Elements: face, hour_hand, minute_hand, second_hand
  (Aliases: analog_clock, analog_clock_hour_hand, etc.)`

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownElement = errors.New("unknown element")
	ErrBadNumber      = errors.New("bad number")
)

// Error ошибка разбора вместе с фрагментом команды, который не подошел.
type Error struct {
	Err error
	Arg string
}

func (e *Error) Error() string { return e.Err.Error() + ": " + e.Arg }

func (e *Error) Unwrap() error { return e.Err }

var aliases = map[string]string{
	"face":                     clock.ElementFace,
	"analog_clock":             clock.ElementFace,
	"hour":                     clock.ElementHour,
	"hour_hand":                clock.ElementHour,
	"analog_clock_hour_hand":   clock.ElementHour,
	"minute":                   clock.ElementMinute,
	"minute_hand":              clock.ElementMinute,
	"analog_clock_minute_hand": clock.ElementMinute,
	"second":                   clock.ElementSecond,
	"second_hand":              clock.ElementSecond,
	"analog_clock_second_hand": clock.ElementSecond,
}

// Element приводит имя из команды к имени элемента раскладки.
func Element(name string) (string, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	el, ok := aliases[key]
	return el, ok
}

type Op int

const (
	OpHelp Op = iota
	OpAnimation
	OpScale
	OpRotate
	OpReset
)

// Command разобранная команда.
type Command struct {
	Op      Op
	Element string
	Number  float64
	Flag    bool
}

var (
	animationRe = regexp.MustCompile(`(?i)^clock\.analog_animation\s*=\s*(true|false)$`)
	scaleRe     = regexp.MustCompile(`(?i)^clock\.([^.]+)\.scale\s*=\s*(\S+)$`)
	rotateRe    = regexp.MustCompile(`(?i)^clock\.([^.]+)\.rotate\s*=\s*(\S+)$`)
	resetRe     = regexp.MustCompile(`(?i)^clock\.([^.]+)\.reset$`)
)

// Parse разбирает строку консоли. Ошибка разбора имеет тип *Error.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "list_commands") {
		return Command{Op: OpHelp}, nil
	}
	if m := animationRe.FindStringSubmatch(line); m != nil {
		return Command{Op: OpAnimation, Flag: strings.EqualFold(m[1], "true")}, nil
	}
	if m := scaleRe.FindStringSubmatch(line); m != nil {
		return elementNumber(OpScale, m[1], m[2])
	}
	if m := rotateRe.FindStringSubmatch(line); m != nil {
		return elementNumber(OpRotate, m[1], m[2])
	}
	if m := resetRe.FindStringSubmatch(line); m != nil {
		el, ok := Element(m[1])
		if !ok {
			return Command{}, &Error{Err: ErrUnknownElement, Arg: m[1]}
		}
		return Command{Op: OpReset, Element: el}, nil
	}
	return Command{}, &Error{Err: ErrUnknownCommand, Arg: line}
}

func elementNumber(op Op, name, value string) (Command, error) {
	el, ok := Element(name)
	if !ok {
		return Command{}, &Error{Err: ErrUnknownElement, Arg: name}
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Command{}, &Error{Err: ErrBadNumber, Arg: value}
	}
	if op == OpScale && v <= 0 {
		return Command{}, &Error{Err: ErrBadNumber, Arg: value}
	}
	return Command{Op: op, Element: el, Number: v}, nil
}

// Target то, к чему применяются команды.
type Target interface {
	SetScale(element string, v float64) error
	SetRotation(element string, deg float64) error
	Reset(element string)
	SetAnimation(enabled bool) error
}

// Run разбирает и выполняет строку, возвращая текст ответа.
func Run(line string, t Target) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	return Apply(cmd, t)
}

func Apply(cmd Command, t Target) (string, error) {
	switch cmd.Op {
	case OpHelp:
		return Help, nil
	case OpAnimation:
		if err := t.SetAnimation(cmd.Flag); err != nil {
			return "", err
		}
		return fmt.Sprintf("clock.analog_animation = %t", cmd.Flag), nil
	case OpScale:
		if err := t.SetScale(cmd.Element, cmd.Number); err != nil {
			return "", err
		}
		return fmt.Sprintf("clock.%s.scale = %s", cmd.Element, formatNumber(cmd.Number)), nil
	case OpRotate:
		if err := t.SetRotation(cmd.Element, cmd.Number); err != nil {
			return "", err
		}
		return fmt.Sprintf("clock.%s.rotate = %s°", cmd.Element, formatNumber(cmd.Number)), nil
	case OpReset:
		t.Reset(cmd.Element)
		return fmt.Sprintf("clock.%s.reset", cmd.Element), nil
	}
	return "", fmt.Errorf("%w: op %d", ErrUnknownCommand, cmd.Op)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
