// internal/ui/palette.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/defs"
	"go-hex-ripple/pkg/hexmap"
)

// Swatch: одна ячейка палитры.
type Swatch struct {
	Tile  hexmap.TileType
	Label string
	Color rl.Color
	Key   int32 // клавиша выбора
}

// Palette: вертикальный столбец образцов тайлов. Последний образец — ластик.
type Palette struct {
	X, Y     float32
	Size     float32
	Gap      float32
	Swatches []Swatch
}

// NewPalette строит палитру по библиотеке тайлов.
func NewPalette(x, y, size float32, lib defs.TileLibrary) *Palette {
	p := &Palette{X: x, Y: y, Size: size, Gap: size * 0.25}
	for i, def := range lib.Palette() {
		r, g, b := def.RGB().RGB255()
		p.Swatches = append(p.Swatches, Swatch{
			Tile:  def.Type,
			Label: def.Name,
			Color: rl.NewColor(r, g, b, 255),
			Key:   rl.KeyOne + int32(i),
		})
	}
	p.Swatches = append(p.Swatches, Swatch{
		Tile:  hexmap.TileEmpty,
		Label: "Eraser",
		Color: rl.NewColor(40, 40, 48, 255),
		Key:   rl.KeyZero,
	})
	return p
}

// Rect возвращает прямоугольник образца i.
func (p *Palette) Rect(i int) rl.Rectangle {
	return rl.NewRectangle(p.X, p.Y+float32(i)*(p.Size+p.Gap), p.Size, p.Size)
}

// Bounds: общий прямоугольник палитры вместе с подписями.
func (p *Palette) Bounds() rl.Rectangle {
	n := float32(len(p.Swatches))
	return rl.NewRectangle(p.X, p.Y, p.Size*4, n*p.Size+(n-1)*p.Gap)
}

// HitTest возвращает тип тайла под точкой.
func (p *Palette) HitTest(pos rl.Vector2) (hexmap.TileType, bool) {
	for i, s := range p.Swatches {
		if rectContains(p.Rect(i), pos) {
			return s.Tile, true
		}
	}
	return hexmap.TileEmpty, false
}

// TileForKey возвращает тип тайла, привязанный к клавише.
func (p *Palette) TileForKey(key int32) (hexmap.TileType, bool) {
	for _, s := range p.Swatches {
		if s.Key == key {
			return s.Tile, true
		}
	}
	return hexmap.TileEmpty, false
}

func (p *Palette) Draw(font rl.Font, selected hexmap.TileType) {
	for i, s := range p.Swatches {
		r := p.Rect(i)
		rl.DrawRectangleRec(r, s.Color)
		if s.Tile == hexmap.TileEmpty {
			rl.DrawLineEx(rl.NewVector2(r.X+6, r.Y+6), rl.NewVector2(r.X+r.Width-6, r.Y+r.Height-6), 3, rl.Red)
		}
		border, thick := rl.Fade(rl.RayWhite, 0.4), float32(1)
		if s.Tile == selected {
			border, thick = rl.RayWhite, 3
		}
		rl.DrawRectangleLinesEx(r, thick, border)
		rl.DrawTextEx(font, s.Label, rl.NewVector2(r.X+r.Width+8, r.Y+r.Height/2-8), 16, 1, rl.RayWhite)
	}
}
