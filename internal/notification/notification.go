package notification

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"clock-app/internal/app"
	"clock-app/internal/i18n"
	"clock-app/internal/logger"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// Kind способ уведомления, совпадает со значениями notification_type.
type Kind string

const (
	Popup   Kind = "Popup"
	Sound   Kind = "Sound"
	Vibrate Kind = "Vibrate"
)

//go:embed assets/chime.wav
var chime []byte

// Backend то, чем уведомление доставляется пользователю.
type Backend interface {
	Notify(title, message string) error
	Alert(title, message string) error
	Play() error
}

// Desktop уведомления через beeep и звук через динамик.
type Desktop struct {
	once   sync.Once
	buffer *beep.Buffer
	err    error
}

func Init(appName string) {
	beeep.AppName = appName
}

func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, app.Icon)
}

func (d *Desktop) Alert(title, message string) error {
	return beeep.Alert(title, message, app.Icon)
}

// Play проигрывает встроенный сигнал. Динамик открывается при первом вызове.
func (d *Desktop) Play() error {
	d.once.Do(func() {
		streamer, format, err := wav.Decode(bytes.NewReader(chime))
		if err != nil {
			d.err = fmt.Errorf("decode chime: %w", err)
			return
		}
		defer streamer.Close()

		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			d.err = fmt.Errorf("init speaker: %w", err)
			return
		}
		d.buffer = beep.NewBuffer(format)
		d.buffer.Append(streamer)
	})
	if d.err != nil {
		return d.err
	}
	speaker.Play(d.buffer.Streamer(0, d.buffer.Len()))
	return nil
}

type Dispatcher struct {
	backend Backend
	log     zerolog.Logger
}

func New(b Backend) *Dispatcher {
	return &Dispatcher{backend: b, log: logger.For("notification")}
}

// Notify доставляет уведомление выбранным способом. Неизвестный способ
// считается всплывающим окном. Если звук не проигрался, показывается окно.
func (d *Dispatcher) Notify(kind Kind, title, message string) error {
	switch kind {
	case Sound:
		err := d.backend.Play()
		if err == nil {
			return nil
		}
		d.log.Warn().Err(err).Msg("chime failed, falling back to popup")
	case Vibrate:
		// На компьютере нет вибромотора, используем системное предупреждение.
		return d.backend.Alert(title, message)
	}
	return d.backend.Notify(title, message)
}

// Error показывает ошибку пользователю.
func (d *Dispatcher) Error(msg string) {
	if err := d.backend.Alert(i18n.T(i18n.ErrorTitle), msg); err != nil {
		d.log.Error().Err(err).Str("message", msg).Msg("alert failed")
	}
}
