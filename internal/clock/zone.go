package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
	// База часовых поясов внутри бинарника: на Windows системной может не быть.
	_ "time/tzdata"
)

var ErrUnknownZone = errors.New("unknown timezone")

var abbreviations = map[string]string{
	"UTC": "UTC",
	"GMT": "Etc/GMT",
	"EST": "America/New_York",
	"CST": "America/Chicago",
	"MST": "America/Denver",
	"PST": "America/Los_Angeles",
}

// Abbreviations сокращения, которые понимает ResolveLocation.
func Abbreviations() []string {
	return []string{"UTC", "GMT", "EST", "CST", "MST", "PST"}
}

// ResolveLocation принимает сокращение (EST) или имя IANA (Europe/Paris).
func ResolveLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownZone)
	}
	if iana, ok := abbreviations[strings.ToUpper(name)]; ok {
		name = iana
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
	}
	return loc, nil
}
