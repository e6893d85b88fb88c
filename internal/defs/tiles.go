// internal/defs/tiles.go
package defs

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"go-hex-ripple/pkg/hexmap"
)

// TileDefinition — статические данные одного типа тайла.
type TileDefinition struct {
	Type   hexmap.TileType `json:"type"`
	Name   string          `json:"name"`
	Color  string          `json:"color"`   // "#rrggbb"
	Height float64         `json:"height"`  // высота призмы в мировых единицах
	NoteHz float64         `json:"note_hz"` // базовая нота при постановке тайла
	Key    string          `json:"key"`     // клавиша палитры
}

// RGB возвращает цвет тайла. Некорректная строка даёт серый.
func (d TileDefinition) RGB() colorful.Color {
	c, err := colorful.Hex(d.Color)
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return c
}

func (d TileDefinition) validate() error {
	if !d.Type.Valid() || d.Type == hexmap.TileEmpty {
		return fmt.Errorf("%w: %v", ErrUnknownTileType, d.Type)
	}
	if _, err := colorful.Hex(d.Color); err != nil {
		return fmt.Errorf("tile %v: bad colour %q: %w", d.Type, d.Color, err)
	}
	if d.Height <= 0 {
		return fmt.Errorf("tile %v: height must be positive, got %v", d.Type, d.Height)
	}
	if d.NoteHz <= 0 {
		return fmt.Errorf("tile %v: note_hz must be positive, got %v", d.Type, d.NoteHz)
	}
	return nil
}

// TileLibrary — определения всех непустых типов тайлов.
type TileLibrary map[hexmap.TileType]TileDefinition

// DefaultTileLibrary — встроенные определения, если файл не найден.
func DefaultTileLibrary() TileLibrary {
	return TileLibrary{
		hexmap.TileA: {Type: hexmap.TileA, Name: "Moss", Color: "#5fd08a", Height: 0.25, NoteHz: 261.63, Key: "1"},
		hexmap.TileB: {Type: hexmap.TileB, Name: "Sand", Color: "#e3c16f", Height: 0.18, NoteHz: 293.66, Key: "2"},
		hexmap.TileC: {Type: hexmap.TileC, Name: "Stone", Color: "#8a8fa3", Height: 0.45, NoteHz: 329.63, Key: "3"},
		hexmap.TileD: {Type: hexmap.TileD, Name: "Crystal", Color: "#b57cff", Height: 0.7, NoteHz: 392.00, Key: "4"},
	}
}

// Get возвращает определение; для отсутствующего типа берётся встроенное.
func (l TileLibrary) Get(t hexmap.TileType) (TileDefinition, bool) {
	if d, ok := l[t]; ok {
		return d, true
	}
	d, ok := DefaultTileLibrary()[t]
	return d, ok
}

// Palette возвращает определения в порядке типов A..D.
func (l TileLibrary) Palette() []TileDefinition {
	out := make([]TileDefinition, 0, hexmap.TileTypeCount-1)
	for t := hexmap.TileA; t < hexmap.TileTypeCount; t++ {
		if d, ok := l.Get(t); ok {
			out = append(out, d)
		}
	}
	return out
}
