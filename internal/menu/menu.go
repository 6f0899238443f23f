// Package menu описывает переходы между экранами приложения.
package menu

import (
	"errors"
	"fmt"
	"sync"
)

type Kind int

const (
	MainMenu Kind = iota
	ClockView
	OptionsMenu
	OptionsSection
	Exit
)

func (k Kind) String() string {
	switch k {
	case MainMenu:
		return "MainMenu"
	case ClockView:
		return "ClockView"
	case OptionsMenu:
		return "OptionsMenu"
	case OptionsSection:
		return "OptionsSection"
	case Exit:
		return "Exit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State экран. Section задан только для OptionsSection.
type State struct {
	Kind    Kind
	Section string
}

func (s State) String() string {
	if s.Kind == OptionsSection {
		return fmt.Sprintf("OptionsSection(%s)", s.Section)
	}
	return s.Kind.String()
}

type EventKind int

const (
	OpenClock EventKind = iota
	OpenOptions
	OpenSection
	Back
	Quit
)

func (k EventKind) String() string {
	switch k {
	case OpenClock:
		return "OpenClock"
	case OpenOptions:
		return "OpenOptions"
	case OpenSection:
		return "OpenSection"
	case Back:
		return "Back"
	case Quit:
		return "Quit"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event действие пользователя. Section задан только для OpenSection.
type Event struct {
	Kind    EventKind
	Section string
}

func Section(name string) Event { return Event{Kind: OpenSection, Section: name} }

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrTerminal          = errors.New("state is terminal")
)

var (
	Start = State{Kind: MainMenu}
	End   = State{Kind: Exit}
)

// Next возвращает состояние после события или ошибку, если переход не разрешен.
// Quit разрешен из любого состояния, кроме Exit.
func Next(s State, e Event) (State, error) {
	if s.Kind == Exit {
		return s, fmt.Errorf("%w: %s", ErrTerminal, s)
	}
	if e.Kind == Quit {
		return End, nil
	}

	switch s.Kind {
	case MainMenu:
		switch e.Kind {
		case OpenClock:
			return State{Kind: ClockView}, nil
		case OpenOptions:
			return State{Kind: OptionsMenu}, nil
		}
	case ClockView:
		if e.Kind == Back {
			return Start, nil
		}
	case OptionsMenu:
		switch e.Kind {
		case OpenSection:
			if e.Section == "" {
				return s, fmt.Errorf("%w: empty section", ErrInvalidTransition)
			}
			return State{Kind: OptionsSection, Section: e.Section}, nil
		case Back:
			return Start, nil
		}
	case OptionsSection:
		if e.Kind == Back {
			return State{Kind: OptionsMenu}, nil
		}
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e.Kind, s)
}

// Navigator хранит текущее состояние и сообщает слушателю о переходах.
type Navigator struct {
	mu       sync.Mutex
	state    State
	listener func(from, to State)
}

func NewNavigator(listener func(from, to State)) *Navigator {
	return &Navigator{state: Start, listener: listener}
}

func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Dispatch применяет событие. Слушатель вызывается вне блокировки.
func (n *Navigator) Dispatch(e Event) (State, error) {
	n.mu.Lock()
	from := n.state
	to, err := Next(from, e)
	if err != nil {
		n.mu.Unlock()
		return from, err
	}
	n.state = to
	listener := n.listener
	n.mu.Unlock()

	if listener != nil {
		listener(from, to)
	}
	return to, nil
}
