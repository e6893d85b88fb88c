// pkg/render/hud.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/daytime"
	"go-hex-ripple/internal/utils"
	"go-hex-ripple/pkg/hexmap"
)

// HUD: палитра, циферблат, пауза и статистика для плоского вида.
type HUD struct {
	face     *text.GoTextFace
	swatches []hudSwatch
	dialX    float64
	dialY    float64
	dialR    float64
	pauseX   float64
	pauseY   float64
	pauseR   float64
}

type hudSwatch struct {
	Tile  hexmap.TileType
	Label string
	Rect  image.Rectangle
	Color color.RGBA
}

func NewHUD(scene *app.Scene, face *text.GoTextFace) *HUD {
	h := &HUD{
		face:   face,
		dialX:  config.ClockDialX,
		dialY:  config.ClockDialY,
		dialR:  config.ClockDialSize,
		pauseX: config.PauseButtonX,
		pauseY: config.PauseButtonY,
		pauseR: config.PauseButtonR,
	}

	size := int(config.PaletteSwatch)
	gap := size / 4
	x := config.PaletteX
	for _, def := range scene.Tiles.Palette() {
		h.swatches = append(h.swatches, hudSwatch{
			Tile:  def.Type,
			Label: def.Key,
			Rect:  image.Rect(x, config.PaletteY, x+size, config.PaletteY+size),
			Color: ToRGBA(def.RGB(), 1),
		})
		x += size + gap
	}
	// ластик
	h.swatches = append(h.swatches, hudSwatch{
		Tile:  hexmap.TileEmpty,
		Label: "0",
		Rect:  image.Rect(x, config.PaletteY, x+size, config.PaletteY+size),
		Color: config.PanelColor,
	})
	return h
}

// SwatchAt возвращает тайл палитры под точкой.
func (h *HUD) SwatchAt(x, y int) (hexmap.TileType, bool) {
	p := image.Pt(x, y)
	for _, s := range h.swatches {
		if p.In(s.Rect) {
			return s.Tile, true
		}
	}
	return hexmap.TileEmpty, false
}

// DialAt сообщает долю суток, если точка попала в циферблат.
func (h *HUD) DialAt(x, y int) (float64, bool) {
	dx, dy := float64(x)-h.dialX, float64(y)-h.dialY
	if dx*dx+dy*dy > h.dialR*h.dialR {
		return 0, false
	}
	return utils.DialFraction(dx, dy), true
}

// PauseAt сообщает, попала ли точка в кнопку паузы.
func (h *HUD) PauseAt(x, y int) bool {
	dx, dy := float64(x)-h.pauseX, float64(y)-h.pauseY
	return dx*dx+dy*dy <= h.pauseR*h.pauseR
}

// HandleClick применяет клик к сцене. true — клик поглощён HUD.
func (h *HUD) HandleClick(scene *app.Scene, x, y int) bool {
	if t, ok := h.SwatchAt(x, y); ok {
		_ = scene.SelectTile(t)
		return true
	}
	if f, ok := h.DialAt(x, y); ok {
		scene.Clock.SetTime(f)
		return true
	}
	if h.PauseAt(x, y) {
		scene.TogglePause()
		return true
	}
	return false
}

func (h *HUD) Draw(screen *ebiten.Image, scene *app.Scene) {
	h.drawPalette(screen, scene.SelectedTile())
	h.drawDial(screen, scene.Clock.Time(), scene.Clock.Lighting())
	h.drawPause(screen, scene.IsPaused())
	h.drawStats(screen, scene.Stats().Lines())

	if hex, ok := scene.Grid.Hovered(); ok {
		label := hex.String()
		if c, ok := scene.Grid.Cell(hex); ok && c.HasTile() {
			if def, ok := scene.Tiles.Get(c.Tile); ok {
				label += " " + def.Name
			}
		}
		h.drawText(screen, label, config.StatsPanelX, config.StatsPanelY-22, config.TextLightColor)
	}
}

func (h *HUD) drawPalette(screen *ebiten.Image, selected hexmap.TileType) {
	for _, s := range h.swatches {
		r := s.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.Color, false)
		stroke := DarkenColor(config.IndicatorStroke, 0.5)
		if s.Tile == selected {
			stroke = config.HoverColor
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.StrokeWidth, stroke, false)
		if s.Tile == hexmap.TileEmpty {
			vector.StrokeLine(screen, float32(r.Min.X+6), float32(r.Max.Y-6), float32(r.Max.X-6), float32(r.Min.Y+6), config.StrokeWidth, config.TextLightColor, true)
		}
		h.drawText(screen, s.Label, r.Min.X+3, r.Max.Y+2, config.TextLightColor)
	}
}

func (h *HUD) drawDial(screen *ebiten.Image, t float64, light daytime.Lighting) {
	cx, cy, r := float32(h.dialX), float32(h.dialY), float32(h.dialR)
	vector.DrawFilledCircle(screen, cx, cy, r, ToRGBA(light.Zenith.BlendLab(light.Horizon, 0.5), 0.9), true)
	vector.StrokeCircle(screen, cx, cy, r, config.StrokeWidth, config.IndicatorStroke, true)

	for i := 0; i < 24; i++ {
		a := float64(utils.DialAngle(float64(i) / 24))
		inner := h.dialR * 0.88
		if i%6 == 0 {
			inner = h.dialR * 0.75
		}
		vector.StrokeLine(screen,
			cx+float32(inner*math.Cos(a)), cy+float32(inner*math.Sin(a)),
			cx+r*float32(math.Cos(a)), cy+r*float32(math.Sin(a)),
			1, config.IndicatorStroke, true)
	}

	a := float64(utils.DialAngle(t))
	ex, ey := cx+float32(h.dialR*0.8*math.Cos(a)), cy+float32(h.dialR*0.8*math.Sin(a))
	vector.StrokeLine(screen, cx, cy, ex, ey, 3, config.IndicatorStroke, true)
	vector.DrawFilledCircle(screen, ex, ey, 5, ToRGBA(light.Sun, 1), true)

	label := fmt.Sprintf("%02d:00", daytime.HourOf(t))
	w, _ := text.Measure(label, h.face, 0)
	h.drawText(screen, label, int(h.dialX-w/2), int(h.dialY+h.dialR+6), config.TextLightColor)
}

func (h *HUD) drawPause(screen *ebiten.Image, paused bool) {
	cx, cy, r := float32(h.pauseX), float32(h.pauseY), float32(h.pauseR)
	vector.DrawFilledCircle(screen, cx, cy, r, config.PanelColor, true)
	vector.StrokeCircle(screen, cx, cy, r, config.StrokeWidth, config.HoverColor, true)
	if paused {
		// треугольник «продолжить»
		var p vector.Path
		p.MoveTo(cx-r*0.35, cy-r*0.5)
		p.LineTo(cx+r*0.55, cy)
		p.LineTo(cx-r*0.35, cy+r*0.5)
		p.Close()
		drawPath(screen, &p, config.TextLightColor)
		return
	}
	vector.DrawFilledRect(screen, cx-r*0.45, cy-r*0.5, r*0.3, r, config.TextLightColor, true)
	vector.DrawFilledRect(screen, cx+r*0.15, cy-r*0.5, r*0.3, r, config.TextLightColor, true)
}

func (h *HUD) drawStats(screen *ebiten.Image, lines []string) {
	height := float32(len(lines)*18 + 12)
	vector.DrawFilledRect(screen, config.StatsPanelX-6, config.StatsPanelY-6, 260, height, config.PanelColor, false)
	for i, line := range lines {
		h.drawText(screen, line, config.StatsPanelX, config.StatsPanelY+i*18, config.TextLightColor)
	}
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
