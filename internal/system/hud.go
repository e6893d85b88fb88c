// internal/system/hud.go
package system

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/ui"
	"go-hex-ripple/pkg/hexmap"
)

// HUDSystem — палитра, циферблат, кнопка паузы и статистика поверх 3D.
type HUDSystem struct {
	scene       *app.Scene
	font        rl.Font
	Palette     *ui.Palette
	Dial        *ui.ClockDial
	PauseButton *ui.PauseButton
	Stats       *ui.StatsPanel
}

func NewHUDSystem(scene *app.Scene, font rl.Font) *HUDSystem {
	return &HUDSystem{
		scene:       scene,
		font:        font,
		Palette:     ui.NewPalette(config.PaletteX, config.PaletteY, config.PaletteSwatch, scene.Tiles),
		Dial:        ui.NewClockDial(config.ClockDialX, config.ClockDialY, config.ClockDialSize),
		PauseButton: ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonR, config.HoverColor, config.TextLightColor),
		Stats:       ui.NewStatsPanel(config.StatsPanelX, config.StatsPanelY),
	}
}

// HandleClick обрабатывает клик по элементам HUD. true — клик поглощён.
func (h *HUDSystem) HandleClick(pos rl.Vector2) bool {
	if t, ok := h.Palette.HitTest(pos); ok {
		_ = h.scene.SelectTile(t)
		return true
	}
	if h.Dial.Contains(pos) {
		h.scene.Clock.SetTime(h.Dial.FractionAt(pos))
		return true
	}
	if h.PauseButton.Contains(pos) {
		h.scene.TogglePause()
		return true
	}
	return false
}

// HandleKeys — выбор тайла клавишами палитры.
func (h *HUDSystem) HandleKeys() {
	for _, s := range h.Palette.Swatches {
		if rl.IsKeyPressed(s.Key) {
			_ = h.scene.SelectTile(s.Tile)
		}
	}
}

func (h *HUDSystem) Draw() {
	h.PauseButton.SetPaused(h.scene.IsPaused())
	h.Palette.Draw(h.font, h.scene.SelectedTile())
	h.Dial.Draw(h.font, h.scene.Clock.Time(), h.scene.Clock.Lighting())
	h.PauseButton.Draw()
	h.Stats.Draw(h.font, h.scene.Stats().Lines())

	if hex, ok := h.scene.Grid.Hovered(); ok {
		label := hoverLabel(h.scene, hex)
		rl.DrawTextEx(h.font, label, rl.NewVector2(float32(config.StatsPanelX), float32(config.StatsPanelY)-24), 18, 1, rl.RayWhite)
	}
}

func hoverLabel(scene *app.Scene, hex hexmap.Hex) string {
	label := hex.String()
	if c, ok := scene.Grid.Cell(hex); ok && c.HasTile() {
		if def, ok := scene.Tiles.Get(c.Tile); ok {
			label += " " + def.Name
		}
	}
	return label
}
