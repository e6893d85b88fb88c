// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button — прямоугольная кнопка с подписью.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	FontSize   float32
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  rl.RayWhite,
		BgColor:    rl.NewColor(32, 38, 56, 230),
		HoverColor: rl.NewColor(58, 70, 104, 240),
		FontSize:   22,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(p rl.Vector2) bool {
	return rectContains(b.Rect, p)
}

// IsClicked — клик левой кнопкой мыши по кнопке в этом кадре.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Contains(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(font rl.Font, mousePos rl.Vector2) {
	bg := b.BgColor
	if b.Contains(mousePos) {
		bg = b.HoverColor
	}
	rl.DrawRectangleRounded(b.Rect, 0.25, 6, bg)
	rl.DrawRectangleRoundedLinesEx(b.Rect, 0.25, 6, 1.5, rl.Fade(rl.RayWhite, 0.6))

	size := rl.MeasureTextEx(font, b.Text, b.FontSize, 1)
	pos := rl.NewVector2(b.Rect.X+(b.Rect.Width-size.X)/2, b.Rect.Y+(b.Rect.Height-size.Y)/2)
	rl.DrawTextEx(font, b.Text, pos, b.FontSize, 1, b.TextColor)
}

func rectContains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
