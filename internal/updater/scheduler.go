package updater

import (
	"context"
	"strings"
	"time"

	"clock-app/internal/config"
)

const FirstCheckDelay = 30 * time.Second

// Interval период автоматической проверки. Неизвестное значение дает сутки.
func Interval(frequency string) time.Duration {
	switch strings.ToLower(frequency) {
	case "weekly":
		return 7 * 24 * time.Hour
	case "monthly":
		return 30 * 24 * time.Hour
	}
	return 24 * time.Hour
}

// Scheduler выполняет автоматические проверки, пока жив ctx.
type Scheduler struct {
	Checker *Checker
	// Settings и OnResult вызываются внутри Do.
	Settings func() config.Settings
	OnResult func(Result)
	Do       func(func())
	// FirstDelay ноль означает FirstCheckDelay.
	FirstDelay time.Duration
}

func (s *Scheduler) Run(ctx context.Context) {
	delay := s.FirstDelay
	if delay <= 0 {
		delay = FirstCheckDelay
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			st, ok := s.settings(ctx)
			if !ok {
				return
			}
			if strings.EqualFold(st.UpdateOption, "Automatic") {
				res := s.Checker.Check(ctx, RequestFrom(st))
				if ctx.Err() != nil {
					return
				}
				s.Do(func() { s.OnResult(res) })
			}
			timer.Reset(Interval(st.UpdateFrequency))

		case <-ctx.Done():
			return
		}
	}
}

// settings читает снимок настроек в потоке интерфейса и ждет ответа.
func (s *Scheduler) settings(ctx context.Context) (config.Settings, bool) {
	ch := make(chan config.Settings, 1)
	s.Do(func() { ch <- s.Settings() })
	select {
	case st := <-ch:
		return st, true
	case <-ctx.Done():
		return config.Settings{}, false
	}
}
