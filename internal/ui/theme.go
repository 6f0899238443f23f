package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// clockTheme стандартная тема fyne с зафиксированным вариантом.
type clockTheme struct {
	variant fyne.ThemeVariant
}

// ThemeFor тема по значению display.theme. Все, кроме Dark, дает светлую.
func ThemeFor(name string) fyne.Theme {
	if strings.EqualFold(name, "Dark") {
		return &clockTheme{variant: theme.VariantDark}
	}
	return &clockTheme{variant: theme.VariantLight}
}

func (t *clockTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *clockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *clockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *clockTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
