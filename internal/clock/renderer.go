package clock

import (
	"image/color"
	"sync"
	"time"

	"clock-app/internal/config"
	"clock-app/internal/logger"

	"github.com/rs/zerolog"
)

// Options параметры отображения, из которых строится Display.
type Options struct {
	Use12Hour     bool
	TimeSeparator string
	DateSeparator string
	DateOrder     string
	Color         string
	FontFamily    string
	FontSize      int
	Animation     bool
}

// OptionsFrom берет параметры отображения из снимка настроек.
func OptionsFrom(s config.Settings) Options {
	return Options{
		Use12Hour:     s.Use12Hour,
		TimeSeparator: s.TimeSeparator,
		DateSeparator: s.DateSeparator,
		DateOrder:     s.DateOrder,
		Color:         s.ClockColor,
		FontFamily:    s.ClockFont,
		FontSize:      s.ClockFontSize,
		Animation:     s.ClockAnimation,
	}
}

// Display все, что нужно нарисовать на одном такте.
type Display struct {
	Time  string
	Date  string
	Color color.NRGBA
	Font  Font
	// Hands нулевые при выключенной анимации.
	Hands Hands
}

// Format строит Display для момента t. Часовой пояс уже применен к t.
func Format(t time.Time, o Options) Display {
	d := Display{
		Time:  FormatTime(t, o.Use12Hour, o.TimeSeparator),
		Date:  FormatDate(t, o.DateOrder, o.DateSeparator),
		Color: ColorFor(o.Color),
		Font:  FontFor(o.FontFamily, o.FontSize),
	}
	if o.Animation {
		d.Hands = HandAngles(t, o.Use12Hour)
	}
	return d
}

// Renderer переводит время в настроенный часовой пояс.
// При неизвестном поясе остается на последнем удачном (сначала UTC).
type Renderer struct {
	mu      sync.Mutex
	zone    string
	loc     *time.Location
	lastBad string
	zoneErr error
	log     zerolog.Logger
}

func NewRenderer() *Renderer {
	return &Renderer{
		zone: "UTC",
		loc:  time.UTC,
		log:  logger.For("clock"),
	}
}

// SetZone меняет часовой пояс. При ошибке пояс не меняется,
// а предупреждение пишется один раз на каждое новое неверное имя.
func (r *Renderer) SetZone(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	loc, err := ResolveLocation(name)
	if err != nil {
		r.zoneErr = err
		if r.lastBad != name {
			r.lastBad = name
			r.log.Warn().Err(err).Str("using", r.zone).Msg("timezone fallback")
		}
		return err
	}
	r.zone, r.loc, r.lastBad, r.zoneErr = name, loc, "", nil
	return nil
}

// Zone имя часового пояса, который действительно используется.
func (r *Renderer) Zone() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zone
}

func (r *Renderer) Location() *time.Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loc
}

// ZoneErr ошибка последней попытки сменить пояс или nil.
func (r *Renderer) ZoneErr() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zoneErr
}

// Render применяет часовой пояс из s и форматирует now.
func (r *Renderer) Render(now time.Time, s config.Settings) Display {
	r.mu.Lock()
	need := s.Timezone != r.zone && s.Timezone != r.lastBad
	r.mu.Unlock()
	if need {
		_ = r.SetZone(s.Timezone)
	}

	r.mu.Lock()
	loc := r.loc
	r.mu.Unlock()
	return Format(now.In(loc), OptionsFrom(s))
}
