package clock

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// LayoutFile имя файла раскладки рядом с файлом настроек.
const LayoutFile = "clock_layout.yaml"

const (
	MinScale = 0.1
	MaxScale = 5.0
)

// ElementLayout пользовательские поправки элемента аналоговых часов.
type ElementLayout struct {
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

// Layout поправки циферблата и стрелок, задаются из консоли.
type Layout struct {
	Elements map[string]ElementLayout `yaml:"elements"`
}

func NewLayout() *Layout {
	return &Layout{Elements: make(map[string]ElementLayout)}
}

// LayoutPath путь к файлу раскладки в каталоге файла настроек.
func LayoutPath(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), LayoutFile)
}

// LoadLayout читает раскладку. Отсутствующий файл дает пустую раскладку.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLayout(), nil
	}
	if err != nil {
		return NewLayout(), fmt.Errorf("read layout %s: %w", path, err)
	}
	l := NewLayout()
	if err := yaml.Unmarshal(data, l); err != nil {
		return NewLayout(), fmt.Errorf("parse layout %s: %w", path, err)
	}
	if l.Elements == nil {
		l.Elements = make(map[string]ElementLayout)
	}
	for name, el := range l.Elements {
		if !knownElement(name) {
			delete(l.Elements, name)
			continue
		}
		el.Scale = clampScale(el.Scale)
		el.Rotation = normRotation(el.Rotation)
		l.Elements[name] = el
	}
	return l, nil
}

func (l *Layout) Save(path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write layout %s: %w", path, err)
	}
	return nil
}

func knownElement(name string) bool {
	for _, e := range Elements {
		if e == name {
			return true
		}
	}
	return false
}

func clampScale(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return 1
	}
	return math.Max(MinScale, math.Min(MaxScale, v))
}

// normRotation приводит угол к (-360, 360). Нечисловой угол сбрасывается в 0.
func normRotation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	return math.Mod(deg, 360)
}

// Scale множитель размера элемента, по умолчанию 1.
func (l *Layout) Scale(element string) float64 {
	el, ok := l.Elements[element]
	if !ok {
		return 1
	}
	return clampScale(el.Scale)
}

// Rotation добавочный поворот элемента в градусах.
func (l *Layout) Rotation(element string) float64 {
	return l.Elements[element].Rotation
}

func (l *Layout) SetScale(element string, v float64) error {
	if !knownElement(element) {
		return fmt.Errorf("unknown element %q", element)
	}
	el := l.entry(element)
	el.Scale = clampScale(v)
	l.Elements[element] = el
	return nil
}

func (l *Layout) SetRotation(element string, deg float64) error {
	if !knownElement(element) {
		return fmt.Errorf("unknown element %q", element)
	}
	el := l.entry(element)
	el.Rotation = normRotation(deg)
	l.Elements[element] = el
	return nil
}

func (l *Layout) Reset(element string) {
	delete(l.Elements, element)
}

func (l *Layout) entry(element string) ElementLayout {
	el, ok := l.Elements[element]
	if !ok {
		el = ElementLayout{Scale: 1}
	}
	return el
}
