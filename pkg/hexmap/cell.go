package hexmap

import (
	"fmt"
	"strings"
)

// TileType — тип тайла, стоящего на ячейке.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileA
	TileB
	TileC
	TileD
)

// TileTypeCount — число значений TileType, включая TileEmpty.
const TileTypeCount = 5

var tileTypeNames = [TileTypeCount]string{"Empty", "TypeA", "TypeB", "TypeC", "TypeD"}

func (t TileType) String() string {
	if int(t) < len(tileTypeNames) {
		return tileTypeNames[t]
	}
	return fmt.Sprintf("TileType(%d)", uint8(t))
}

// Valid сообщает, входит ли t в закрытый набор типов.
func (t TileType) Valid() bool {
	return t < TileTypeCount
}

// ParseTileType принимает "TypeA", "typea" или просто "a".
func ParseTileType(s string) (TileType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range tileTypeNames {
		lower := strings.ToLower(name)
		if s == lower || s == strings.TrimPrefix(lower, "type") {
			return TileType(i), nil
		}
	}
	return TileEmpty, fmt.Errorf("unknown tile type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t TileType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tile type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TileType) UnmarshalText(b []byte) error {
	parsed, err := ParseTileType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// VisualKind — вариант визуального представления тайла.
type VisualKind uint8

const (
	VisualHexOutline VisualKind = iota + 1
	VisualTileMesh
)

func (k VisualKind) String() string {
	switch k {
	case VisualHexOutline:
		return "hex-outline"
	case VisualTileMesh:
		return "tile-mesh"
	}
	return "unknown"
}

// TileVisual — отрисованный объект тайла, которым владеет ячейка.
// Набор вариантов закрыт: реализации встраивают OutlineVisual или MeshVisual.
type TileVisual interface {
	Kind() VisualKind
	// Dispose освобождает ресурсы рендера. Вызывается ровно один раз.
	Dispose()
	sealed()
}

// OutlineVisual встраивается в визуалы-контуры.
type OutlineVisual struct{}

func (OutlineVisual) Kind() VisualKind { return VisualHexOutline }
func (OutlineVisual) sealed()          {}

// MeshVisual встраивается в визуалы-меши.
type MeshVisual struct{}

func (MeshVisual) Kind() VisualKind { return VisualTileMesh }
func (MeshVisual) sealed()          {}

// TileBuilder создаёт визуал тайла для ячейки. Реализуется адаптером рендера.
type TileBuilder interface {
	BuildTile(c *Cell, t TileType) (TileVisual, error)
}

// TileBuilderFunc позволяет использовать функцию как TileBuilder.
type TileBuilderFunc func(c *Cell, t TileType) (TileVisual, error)

func (f TileBuilderFunc) BuildTile(c *Cell, t TileType) (TileVisual, error) { return f(c, t) }

// Cell — состояние одной ячейки сетки.
type Cell struct {
	Hex             Hex
	X, Z            float64 // центр в мировых координатах
	Intensity       float64
	TargetIntensity float64
	Tile            TileType
	Visual          TileVisual
	Offset          int // индекс слота в LineBuffer
}

// HasTile сообщает, стоит ли на ячейке тайл.
func (c *Cell) HasTile() bool {
	return c.Tile != TileEmpty
}

func (c *Cell) releaseVisual() {
	if c.Visual != nil {
		c.Visual.Dispose()
		c.Visual = nil
	}
}
