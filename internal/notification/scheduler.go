package notification

import (
	"context"
	"time"

	"clock-app/internal/clock"
	"clock-app/internal/config"
	"clock-app/internal/i18n"
)

// HourCrossed сообщает, начался ли новый час между prev и now.
// Оба момента должны быть в одном часовом поясе.
func HourCrossed(prev, now time.Time) bool {
	if prev.IsZero() || !now.After(prev) {
		return false
	}
	if now.Sub(prev) >= time.Hour {
		return true
	}
	return now.Hour() != prev.Hour()
}

// Locator отдает часовой пояс, в котором отсчитываются часы.
type Locator interface {
	Location() *time.Location
}

// Scheduler раз в секунду смотрит на часы и в начале каждого часа
// отправляет уведомление, если они включены.
type Scheduler struct {
	Dispatcher *Dispatcher
	Zone       Locator
	// Settings вызывается внутри Do.
	Settings func() config.Settings
	// Do выполняет функцию в потоке интерфейса.
	Do       func(func())
	Now      func() time.Time
	Interval time.Duration
}

func (s *Scheduler) Run(ctx context.Context) {
	interval := s.Interval
	if interval <= 0 {
		interval = time.Second
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := now().In(s.Zone.Location())
	for {
		select {
		case <-ticker.C:
			loc := s.Zone.Location()
			cur := now().In(loc)
			// после смены пояса prev переводится в новый, иначе час "сменится" сам
			if HourCrossed(prev.In(loc), cur) {
				s.Do(func() { s.chime(cur) })
			}
			prev = cur

		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) chime(at time.Time) {
	st := s.Settings()
	if !st.NotificationsEnabled {
		return
	}
	title := i18n.T(i18n.NotifyHourTitle)
	msg := i18n.T(i18n.NotifyHourMsg, "time", clock.FormatTime(at, st.Use12Hour, st.TimeSeparator))
	if err := s.Dispatcher.Notify(Kind(st.NotificationType), title, msg); err != nil {
		s.Dispatcher.log.Warn().Err(err).Str("kind", st.NotificationType).Msg("hourly notification failed")
	}
}
