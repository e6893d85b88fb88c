// internal/ui/stats_panel.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// StatsPanel — полупрозрачная панель со строками статистики.
type StatsPanel struct {
	X, Y       float32
	Width      float32
	LineHeight float32
	FontSize   float32
}

func NewStatsPanel(x, y float32) *StatsPanel {
	return &StatsPanel{X: x, Y: y, Width: 260, LineHeight: 20, FontSize: 16}
}

// Height — высота панели для n строк.
func (p *StatsPanel) Height(n int) float32 {
	return float32(n)*p.LineHeight + 12
}

func (p *StatsPanel) Draw(font rl.Font, lines []string) {
	rl.DrawRectangleRounded(rl.NewRectangle(p.X, p.Y, p.Width, p.Height(len(lines))), 0.15, 6, rl.NewColor(20, 24, 36, 200))
	for i, line := range lines {
		rl.DrawTextEx(font, line, rl.NewVector2(p.X+10, p.Y+6+float32(i)*p.LineHeight), p.FontSize, 1, rl.RayWhite)
	}
}
