// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PauseButton — круглая кнопка паузы в углу HUD.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw() {
	// короткий "пульс" после клика
	elapsed := time.Since(b.LastClickTime).Seconds()
	s := b.Size * float32(1.0+0.3*math.Exp(-elapsed*8))

	if b.IsPaused {
		c := colorToRL(b.PlayColor)
		p1 := rl.NewVector2(b.X-s*0.8, b.Y-s)
		p2 := rl.NewVector2(b.X-s*0.8, b.Y+s)
		p3 := rl.NewVector2(b.X+s, b.Y)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.RayWhite)
		return
	}

	c := colorToRL(b.PauseColor)
	w, h, gap := s*0.6, s*2, s*0.4
	rl.DrawRectangleV(rl.NewVector2(b.X-w-gap/2, b.Y-h/2), rl.NewVector2(w, h), c)
	rl.DrawRectangleV(rl.NewVector2(b.X+gap/2, b.Y-h/2), rl.NewVector2(w, h), c)
}

// Contains — попадание в круг кнопки.
func (b *PauseButton) Contains(p rl.Vector2) bool {
	dx, dy := p.X-b.X, p.Y-b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2
}

// SetPaused синхронизирует иконку с состоянием сцены.
func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

// colorToRL преобразует стандартный color.Color в rl.Color
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
