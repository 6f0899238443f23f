package clock

import "image/color"

var colors = map[string]color.NRGBA{
	"Red":    {R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff},
	"Green":  {R: 0x38, G: 0x8e, B: 0x3c, A: 0xff},
	"Blue":   {R: 0x19, G: 0x76, B: 0xd2, A: 0xff},
	"Yellow": {R: 0xfb, G: 0xc0, B: 0x2d, A: 0xff},
	"Purple": {R: 0x7b, G: 0x1f, B: 0xa2, A: 0xff},
	"Orange": {R: 0xf5, G: 0x7c, B: 0x00, A: 0xff},
	"Pink":   {R: 0xe9, G: 0x1e, B: 0x63, A: 0xff},
	"Brown":  {R: 0x6d, G: 0x4c, B: 0x41, A: 0xff},
	"Gray":   {R: 0x75, G: 0x75, B: 0x75, A: 0xff},
	"Black":  {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	"White":  {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// ColorFor цвет по названию; неизвестное название дает черный.
func ColorFor(name string) color.NRGBA {
	if c, ok := colors[name]; ok {
		return c
	}
	return colors["Black"]
}

const (
	MinFontSize = 8
	MaxFontSize = 30
)

// Font описание шрифта циферблата.
type Font struct {
	Family    string
	Size      int
	Monospace bool
	Italic    bool
}

// FontFor строит описание шрифта. Размер ограничивается диапазоном 8..30.
func FontFor(family string, size int) Font {
	if size < MinFontSize {
		size = MinFontSize
	}
	if size > MaxFontSize {
		size = MaxFontSize
	}
	f := Font{Family: family, Size: size}
	// У fyne только обычный и моноширинный шрифты, шрифт с засечками передаем курсивом.
	switch family {
	case "Courier New":
		f.Monospace = true
	case "Times New Roman":
		f.Italic = true
	}
	return f
}
