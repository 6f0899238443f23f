package clock

import (
	"math"
	"time"
)

// Стрелки аналоговых часов.
const (
	ElementFace   = "face"
	ElementHour   = "hour"
	ElementMinute = "minute"
	ElementSecond = "second"
)

var Elements = []string{ElementFace, ElementHour, ElementMinute, ElementSecond}

// Hands углы стрелок в градусах по часовой стрелке от 12 часов.
type Hands struct {
	Hour   float64
	Minute float64
	Second float64
}

// HandAngles считает углы стрелок: секундная 6° в секунду, минутная 6° в минуту.
// Часовая проходит 30° в час на 12-часовом циферблате и 15° на 24-часовом.
func HandAngles(t time.Time, use12Hour bool) Hands {
	sec := float64(t.Second()) + float64(t.Nanosecond())/1e9
	min := float64(t.Minute()) + sec/60

	var hr, perHour float64
	if use12Hour {
		hr, perHour = float64(t.Hour()%12)+min/60, 30
	} else {
		hr, perHour = float64(t.Hour())+min/60, 15
	}
	return Hands{
		Hour:   hr * perHour,
		Minute: min * 6,
		Second: sec * 6,
	}
}

// HandLength длина стрелки относительно радиуса циферблата.
var HandLength = map[string]float64{
	ElementHour:   0.5,
	ElementMinute: 0.75,
	ElementSecond: 0.85,
}

// HandEnd координаты конца стрелки длиной length, повернутой на angle градусов.
// Ось y направлена вниз, как на экране.
func HandEnd(cx, cy, length, angle float64) (x, y float64) {
	rad := angle * math.Pi / 180
	return cx + length*math.Sin(rad), cy - length*math.Cos(rad)
}
