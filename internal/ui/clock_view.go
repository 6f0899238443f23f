package ui

import (
	"context"
	"errors"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"clock-app/internal/clock"
	"clock-app/internal/config"
	"clock-app/internal/console"
	"clock-app/internal/i18n"
	"clock-app/internal/menu"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const faceSide = 220

var handWidth = map[string]float32{
	clock.ElementHour:   4,
	clock.ElementMinute: 3,
	clock.ElementSecond: 1.5,
}

// clockView экран часов. Живет от входа в ClockView до выхода из него.
type clockView struct {
	w *Window

	timeText *canvas.Text
	dateText *canvas.Text
	digital  *fyne.Container

	face   *canvas.Circle
	marks  []*canvas.Line
	hands  map[string]*canvas.Line
	analog *fyne.Container

	input   *widget.Entry
	output  *widget.Label
	content fyne.CanvasObject

	running bool
	cancel  context.CancelFunc
	last    clock.Display
}

func newClockView(w *Window) *clockView {
	v := &clockView{w: w, hands: make(map[string]*canvas.Line)}

	v.timeText = canvas.NewText("", color.Black)
	v.timeText.Alignment = fyne.TextAlignCenter
	v.timeText.TextStyle = fyne.TextStyle{Bold: true}
	v.dateText = canvas.NewText("", color.Black)
	v.dateText.Alignment = fyne.TextAlignCenter
	v.digital = container.NewVBox(v.timeText, v.dateText)

	v.face = canvas.NewCircle(color.Transparent)
	v.face.StrokeWidth = 2
	objs := []fyne.CanvasObject{v.face}
	for i := 0; i < 12; i++ {
		l := canvas.NewLine(color.Black)
		l.StrokeWidth = 2
		v.marks = append(v.marks, l)
		objs = append(objs, l)
	}
	for _, el := range []string{clock.ElementHour, clock.ElementMinute, clock.ElementSecond} {
		l := canvas.NewLine(color.Black)
		l.StrokeWidth = handWidth[el]
		v.hands[el] = l
		objs = append(objs, l)
	}
	v.analog = container.New(&faceLayout{v: v}, objs...)

	v.output = widget.NewLabel("")
	v.output.Wrapping = fyne.TextWrapWord
	v.input = widget.NewEntry()
	v.input.SetPlaceHolder(i18n.T(i18n.ClockConsoleHint))
	v.input.OnSubmitted = v.runCommand

	back := widget.NewButtonWithIcon(i18n.T(i18n.CommonBack), theme.NavigateBackIcon(), func() {
		w.Dispatch(menu.Event{Kind: menu.Back})
	})

	v.content = container.NewBorder(
		nil,
		container.NewVBox(v.input, v.output, back),
		nil, nil,
		container.NewCenter(container.NewStack(v.digital, v.analog)),
	)
	return v
}

// Start запускает секундный тик. Вся работа тика выполняется в потоке интерфейса.
func (v *clockView) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	v.cancel = cancel
	v.running = true
	v.refresh()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fyne.Do(v.refresh)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (v *clockView) Stop() {
	v.running = false
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

func (v *clockView) refresh() {
	if !v.running {
		return
	}
	st := v.w.Store.Settings()
	d := v.w.Renderer.Render(v.w.Now(), st)
	v.last = d

	if strings.EqualFold(st.ClockType, "Analog") {
		v.digital.Hide()
		v.analog.Show()
		v.drawAnalog(d)
		return
	}
	v.analog.Hide()
	v.digital.Show()

	style := fyne.TextStyle{Bold: true, Monospace: d.Font.Monospace, Italic: d.Font.Italic}
	v.timeText.Text = d.Time
	v.timeText.Color = d.Color
	v.timeText.TextSize = float32(d.Font.Size) * 2.5
	v.timeText.TextStyle = style
	v.dateText.Text = d.Date
	v.dateText.Color = d.Color
	v.dateText.TextSize = float32(d.Font.Size) * 1.25
	v.dateText.TextStyle = fyne.TextStyle{Monospace: d.Font.Monospace, Italic: d.Font.Italic}
	v.timeText.Refresh()
	v.dateText.Refresh()
	v.digital.Refresh()
}

func (v *clockView) side() float32 {
	return float32(faceSide * v.w.Layout.Scale(clock.ElementFace))
}

func (v *clockView) drawAnalog(d clock.Display) {
	side := v.side()
	c := float64(side) / 2
	r := c - 4
	dial := v.w.Layout.Rotation(clock.ElementFace)

	v.face.StrokeColor = d.Color
	v.face.Position1 = fyne.NewPos(float32(c-r), float32(c-r))
	v.face.Position2 = fyne.NewPos(float32(c+r), float32(c+r))

	for i, m := range v.marks {
		angle := float64(i)*30 + dial
		x1, y1 := clock.HandEnd(c, c, r*0.88, angle)
		x2, y2 := clock.HandEnd(c, c, r, angle)
		m.StrokeColor = d.Color
		m.Position1 = fyne.NewPos(float32(x1), float32(y1))
		m.Position2 = fyne.NewPos(float32(x2), float32(y2))
	}

	angles := map[string]float64{
		clock.ElementHour:   d.Hands.Hour,
		clock.ElementMinute: d.Hands.Minute,
		clock.ElementSecond: d.Hands.Second,
	}
	for el, l := range v.hands {
		length := r * clock.HandLength[el] * v.w.Layout.Scale(el)
		x, y := clock.HandEnd(c, c, length, angles[el]+dial+v.w.Layout.Rotation(el))
		l.StrokeColor = d.Color
		l.StrokeWidth = handWidth[el] * float32(math.Sqrt(v.w.Layout.Scale(el)))
		l.Position1 = fyne.NewPos(float32(c), float32(c))
		l.Position2 = fyne.NewPos(float32(x), float32(y))
	}
	v.analog.Refresh()
}

func (v *clockView) runCommand(line string) {
	v.input.SetText("")
	if strings.TrimSpace(line) == "" {
		return
	}
	out, err := console.Run(line, consoleTarget{v.w})
	if err != nil {
		v.output.SetText(consoleMessage(err))
		return
	}
	v.w.saveLayout()
	v.output.SetText(out)
	v.refresh()
}

func consoleMessage(err error) string {
	var ce *console.Error
	if !errors.As(err, &ce) {
		return err.Error()
	}
	switch {
	case errors.Is(ce, console.ErrUnknownElement):
		return i18n.T(i18n.ConsoleUnknownElement, "element", ce.Arg)
	case errors.Is(ce, console.ErrBadNumber):
		return i18n.T(i18n.ConsoleBadNumber, "value", ce.Arg)
	}
	return i18n.T(i18n.ConsoleUnknown, "command", ce.Arg)
}

// consoleTarget команды консоли меняют раскладку окна и флаг анимации в настройках.
type consoleTarget struct {
	w *Window
}

func (t consoleTarget) SetScale(el string, v float64) error { return t.w.Layout.SetScale(el, v) }

func (t consoleTarget) SetRotation(el string, deg float64) error {
	return t.w.Layout.SetRotation(el, deg)
}

func (t consoleTarget) Reset(el string) { t.w.Layout.Reset(el) }

func (t consoleTarget) SetAnimation(enabled bool) error {
	return t.w.apply(config.SectionBehavior, config.KeyClockAnimation, strconv.FormatBool(enabled))
}

// faceLayout держит циферблат квадратным. Элементы расставляет drawAnalog.
type faceLayout struct {
	v *clockView
}

func (l *faceLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	s := l.v.side()
	return fyne.NewSize(s, s)
}

func (l *faceLayout) Layout([]fyne.CanvasObject, fyne.Size) {}
