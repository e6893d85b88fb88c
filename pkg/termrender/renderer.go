// pkg/termrender/renderer.go
package termrender

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/daytime"
	"go-hex-ripple/pkg/hexmap"
)

const (
	paletteRow = 0
	gridTop    = 2
)

// Renderer рисует сцену символами: фон неба, гексы по яркости, палитру и статистику.
type Renderer struct {
	screen tcell.Screen
	scene  *app.Scene
	layout Layout
	width  int
	height int
	held   tcell.ButtonMask
}

func NewRenderer(screen tcell.Screen, scene *app.Scene) *Renderer {
	r := &Renderer{screen: screen, scene: scene}
	r.Resize()
	return r
}

// Resize пересчитывает раскладку под текущий размер экрана.
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	bottom := r.height - len(r.scene.Stats().Lines()) - 1
	r.layout = NewLayout(r.width, gridTop, bottom, r.scene.Grid.HexSize())
}

func (r *Renderer) Layout() Layout { return r.layout }

// HexAt: гекс под клеткой терминала, если он на сетке.
func (r *Renderer) HexAt(col, row int) (hexmap.Hex, bool) {
	h := r.layout.HexAt(col, row)
	return h, r.scene.Grid.Contains(h)
}

// PaletteAt: тайл под клеткой строки палитры.
func (r *Renderer) PaletteAt(col, row int) (hexmap.TileType, bool) {
	if row != paletteRow {
		return hexmap.TileEmpty, false
	}
	for _, e := range r.paletteEntries() {
		if col >= e.from && col < e.to {
			return e.tile, true
		}
	}
	return hexmap.TileEmpty, false
}

func (r *Renderer) Draw() {
	light := r.scene.Clock.Lighting()
	r.drawSky(light)
	r.drawGrid(light)
	r.drawPalette()
	r.drawStats()
	r.screen.Show()
}

func (r *Renderer) drawSky(light daytime.Lighting) {
	for row := 0; row < r.height; row++ {
		k := float64(row) / float64(max(r.height-1, 1))
		style := tcell.StyleDefault.Background(toTcell(light.Zenith.BlendLab(light.Horizon, k)))
		for col := 0; col < r.width; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
	if r.scene.Stars == nil {
		return
	}
	now := r.scene.Now()
	for i, star := range r.scene.Stars.Stars {
		b := r.scene.Stars.Brightness(i, now, light.Stars)
		if b < 0.3 {
			continue
		}
		col, row := int(star.X*float64(r.width)), int(star.Y*float64(r.height)*0.7)
		_, _, style, _ := r.screen.GetContent(col, row)
		ch := '.'
		if b > 0.75 {
			ch = '*'
		}
		r.screen.SetContent(col, row, ch, nil, style.Foreground(tcell.NewRGBColor(int32(255*b), int32(250*b), int32(235*b))))
	}
}

func (r *Renderer) drawGrid(light daytime.Lighting) {
	glow := r.scene.Grid.Glow()
	hovered, hasHover := r.scene.Grid.Hovered()
	shade := 0.35 + 0.65*light.SunIntensity

	for _, c := range r.scene.Grid.Cells() {
		col, row := r.layout.ToScreen(c.X, c.Z)
		lc, _ := glow.Color(c.Intensity)
		style := tcell.StyleDefault.Foreground(toTcell(lc)).Background(toTcell(light.Ambient.BlendLab(lc, min(c.Intensity, 1)*0.5)))

		left, mid, right := ' ', '·', ' '
		if c.HasTile() {
			if def, ok := r.scene.Tiles.Get(c.Tile); ok {
				k := shade + (1-shade)*min(c.Intensity, 1)
				tc := def.RGB()
				style = style.Foreground(toTcell(colorful.Color{R: tc.R * k, G: tc.G * k, B: tc.B * k}))
			}
			mid = '⬢'
		}
		if hasHover && c.Hex == hovered {
			left, right = '[', ']'
			style = style.Bold(true)
		}
		r.screen.SetContent(col-1, row, left, nil, style)
		r.screen.SetContent(col, row, mid, nil, style)
		r.screen.SetContent(col+1, row, right, nil, style)
	}
}

type paletteEntry struct {
	tile     hexmap.TileType
	label    string
	color    colorful.Color
	from, to int
}

func (r *Renderer) paletteEntries() []paletteEntry {
	var out []paletteEntry
	col := 1
	add := func(t hexmap.TileType, label string, c colorful.Color) {
		w := len([]rune(label)) + 2
		out = append(out, paletteEntry{tile: t, label: label, color: c, from: col, to: col + w})
		col += w + 1
	}
	for _, def := range r.scene.Tiles.Palette() {
		add(def.Type, def.Key+" "+def.Name, def.RGB())
	}
	add(hexmap.TileEmpty, "0 erase", colorful.Color{R: 0.5, G: 0.5, B: 0.5})
	return out
}

func (r *Renderer) drawPalette() {
	selected := r.scene.SelectedTile()
	for _, e := range r.paletteEntries() {
		style := tcell.StyleDefault.Foreground(toTcell(e.color)).Background(tcell.ColorBlack)
		if e.tile == selected {
			style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(toTcell(e.color))
		}
		drawText(r.screen, e.from, paletteRow, " "+e.label+" ", style)
	}

	status := fmt.Sprintf(" %02d:00 ", r.scene.Clock.Hour())
	if r.scene.IsPaused() {
		status = " PAUSED" + status
	}
	drawText(r.screen, r.width-len(status)-1, paletteRow, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
}

func (r *Renderer) drawStats() {
	lines := r.scene.Stats().Lines()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	top := r.height - len(lines)
	for i, line := range lines {
		drawText(r.screen, 1, top+i, line, style)
	}
}

func drawText(s tcell.Screen, col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		s.SetContent(col, row, ch, nil, style)
		col++
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
