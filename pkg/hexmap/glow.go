package hexmap

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Glow описывает, как интенсивность ячейки переводится в цвет линий.
type Glow struct {
	Base      colorful.Color // цвет при нулевой интенсивности
	Lit       colorful.Color // цвет при интенсивности 1.0
	Peak      colorful.Color // базовый цвет овердрайва, масштабируется интенсивностью
	BaseAlpha float64
	LitAlpha  float64
}

// DefaultGlow — холодная голубая подсветка.
func DefaultGlow() Glow {
	return Glow{
		Base:      colorful.Color{R: 0.16, G: 0.24, B: 0.32},
		Lit:       colorful.Color{R: 0.30, G: 0.78, B: 1.00},
		Peak:      colorful.Color{R: 0.45, G: 0.85, B: 1.00},
		BaseAlpha: 0.35,
		LitAlpha:  1.0,
	}
}

// Color возвращает цвет и альфу для интенсивности.
// До 1.0 цвет интерполируется Base → Lit; выше 1.0 (овердрайв) берётся Peak,
// умноженный на интенсивность, с отсечением каналов по 1.
func (g Glow) Color(intensity float64) (colorful.Color, float64) {
	if intensity <= 0 {
		return g.Base, g.BaseAlpha
	}
	if intensity > 1 {
		c := colorful.Color{
			R: g.Peak.R * intensity,
			G: g.Peak.G * intensity,
			B: g.Peak.B * intensity,
		}
		return c.Clamped(), g.LitAlpha
	}
	alpha := g.BaseAlpha + (g.LitAlpha-g.BaseAlpha)*intensity
	return g.Base.BlendRgb(g.Lit, intensity), alpha
}
