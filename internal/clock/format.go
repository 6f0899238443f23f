package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Порядок частей даты.
const (
	OrderDMY = "DMY"
	OrderMDY = "MDY"
	OrderYMD = "YMD"
)

var ErrBadDate = errors.New("bad date")

// FormatTime форматирует время: HH:MM:SS или hh:MM:SS AM|PM.
func FormatTime(t time.Time, use12Hour bool, sep string) string {
	if !use12Hour {
		return fmt.Sprintf("%02d%s%02d%s%02d", t.Hour(), sep, t.Minute(), sep, t.Second())
	}
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	suffix := "AM"
	if t.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d%s%02d%s%02d %s", h, sep, t.Minute(), sep, t.Second(), suffix)
}

// FormatDate форматирует дату в заданном порядке. Неизвестный порядок считается DMY.
func FormatDate(t time.Time, order, sep string) string {
	d := fmt.Sprintf("%02d", t.Day())
	m := fmt.Sprintf("%02d", int(t.Month()))
	y := fmt.Sprintf("%04d", t.Year())

	var parts []string
	switch order {
	case OrderMDY:
		parts = []string{m, d, y}
	case OrderYMD:
		parts = []string{y, m, d}
	default:
		parts = []string{d, m, y}
	}
	return strings.Join(parts, sep)
}

// ParseDate разбирает строку, полученную FormatDate, и возвращает полночь этой даты в UTC.
func ParseDate(s, order, sep string) (time.Time, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
		}
		nums[i] = n
	}

	var y, m, d int
	switch order {
	case OrderMDY:
		m, d, y = nums[0], nums[1], nums[2]
	case OrderYMD:
		y, m, d = nums[0], nums[1], nums[2]
	default:
		d, m, y = nums[0], nums[1], nums[2]
	}

	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует 31.02 в 03.03, такие даты отвергаем
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	return t, nil
}
