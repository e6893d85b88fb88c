// pkg/hexmap/grid.go
package hexmap

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"go-hex-ripple/pkg/utils"
)

// ErrInvalidRadius — радиус сетки отрицательный.
var ErrInvalidRadius = errors.New("hexmap: grid radius must be >= 0")

const (
	DefaultLerpSpeed    = 6.0
	DefaultEpsilon      = 0.001
	DefaultMaxIntensity = 2.0
	DefaultLineScale    = 0.96
)

// Grid хранит ячейки шестиугольной области и их анимируемую интенсивность.
type Grid struct {
	radius  int
	size    float64
	cells   map[Hex]*Cell
	order   []*Cell
	builder TileBuilder
	glow    Glow
	lines   *LineBuffer
	active  map[Hex]struct{}
	hovered *Cell

	lerpSpeed    float64
	epsilon      float64
	maxIntensity float64
	lineScale    float64
	lineLift     float32
}

// GridOption настраивает Grid при создании.
type GridOption func(*Grid)

func WithGlow(g Glow) GridOption            { return func(gr *Grid) { gr.glow = g } }
func WithLerpSpeed(v float64) GridOption    { return func(gr *Grid) { gr.lerpSpeed = v } }
func WithEpsilon(v float64) GridOption      { return func(gr *Grid) { gr.epsilon = v } }
func WithMaxIntensity(v float64) GridOption { return func(gr *Grid) { gr.maxIntensity = v } }
func WithLineScale(v float64) GridOption    { return func(gr *Grid) { gr.lineScale = v } }
func WithLineLift(y float32) GridOption     { return func(gr *Grid) { gr.lineLift = y } }

// NewGrid создаёт все ячейки с расстоянием до центра <= radius.
// Ошибка здесь означает ошибку программиста: вызывающий код считает её фатальной.
func NewGrid(radius int, size float64, builder TileBuilder, opts ...GridOption) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: hex size %v", ErrDegenerateGeometry, size)
	}

	g := &Grid{
		radius:       radius,
		size:         size,
		cells:        make(map[Hex]*Cell),
		builder:      builder,
		glow:         DefaultGlow(),
		active:       make(map[Hex]struct{}),
		lerpSpeed:    DefaultLerpSpeed,
		epsilon:      DefaultEpsilon,
		maxIntensity: DefaultMaxIntensity,
		lineScale:    DefaultLineScale,
	}
	for _, opt := range opts {
		opt(g)
	}

	// Генерация шестиугольной области
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			h := Hex{q, r}
			x, z := h.ToWorld(size)
			c := &Cell{Hex: h, X: x, Z: z}
			g.cells[h] = c
			g.order = append(g.order, c)
		}
	}
	sort.Slice(g.order, func(i, j int) bool {
		a, b := g.order[i].Hex, g.order[j].Hex
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		return a.R < b.R
	})

	g.lines = newLineBuffer(len(g.order))
	for slot, c := range g.order {
		c.Offset = slot
		pts, err := HexVerticesChecked(c.X, c.Z, size, g.lineScale)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", c.Hex, err)
		}
		g.lines.setGeometry(slot, pts, g.lineLift)
		g.recolor(c)
	}
	g.lines.ClearDirty()
	return g, nil
}

// Radius возвращает радиус сетки.
func (g *Grid) Radius() int { return g.radius }

// HexSize возвращает размер гекса в мировых единицах.
func (g *Grid) HexSize() float64 { return g.size }

// Len возвращает число ячеек.
func (g *Grid) Len() int { return len(g.order) }

// Cells возвращает ячейки в порядке слотов LineBuffer.
func (g *Grid) Cells() []*Cell { return g.order }

// Lines возвращает общий буфер линий.
func (g *Grid) Lines() *LineBuffer { return g.lines }

// Glow возвращает палитру подсветки.
func (g *Grid) Glow() Glow { return g.glow }

// Contains проверяет, есть ли гекс в сетке.
func (g *Grid) Contains(h Hex) bool {
	_, ok := g.cells[h]
	return ok
}

// Cell возвращает ячейку по координате.
func (g *Grid) Cell(h Hex) (*Cell, bool) {
	c, ok := g.cells[h]
	return c, ok
}

// CellAt возвращает ячейку, в которую попадает точка (x, z) плоскости земли.
func (g *Grid) CellAt(x, z float64) (*Cell, bool) {
	return g.Cell(WorldToHex(x, z, g.size))
}

// Neighbors возвращает существующих соседей гекса
func (g *Grid) Neighbors(h Hex) []Hex {
	valid := make([]Hex, 0, 6)
	for _, n := range h.AllPossibleNeighbors() {
		if g.Contains(n) {
			valid = append(valid, n)
		}
	}
	return valid
}

// Hovered возвращает подсвеченный курсором гекс.
func (g *Grid) Hovered() (Hex, bool) {
	if g.hovered == nil {
		return Hex{}, false
	}
	return g.hovered.Hex, true
}

// SetHover переносит подсветку на h. Если h вне сетки, подсветка снимается.
func (g *Grid) SetHover(h Hex) bool {
	c, ok := g.cells[h]
	if !ok {
		g.ClearHover()
		return false
	}
	if g.hovered == c {
		return true
	}
	g.ClearHover()
	g.hovered = c
	g.UpdateIntensity(h, 1.0)
	return true
}

// ClearHover снимает подсветку.
func (g *Grid) ClearHover() {
	if g.hovered == nil {
		return
	}
	g.UpdateIntensity(g.hovered.Hex, 0)
	g.hovered = nil
}

// UpdateIntensity задаёт целевую интенсивность (с отсечением в [0,1])
// и добавляет ячейку в активный набор. Гексы вне сетки игнорируются.
func (g *Grid) UpdateIntensity(h Hex, target float64) bool {
	c, ok := g.cells[h]
	if !ok {
		return false
	}
	c.TargetIntensity = utils.Clamp(target, 0, 1)
	g.active[h] = struct{}{}
	return true
}

// PlaceTile ставит тайл типа t на ячейку h, освобождая прежний визуал.
// TileEmpty просто убирает тайл. Для гекса вне сетки возвращает false.
func (g *Grid) PlaceTile(h Hex, t TileType) (bool, error) {
	c, ok := g.cells[h]
	if !ok {
		return false, nil
	}
	if !t.Valid() {
		return false, fmt.Errorf("place tile at %v: %w", h, errInvalidTile(t))
	}

	c.releaseVisual()
	c.Tile = TileEmpty
	if t == TileEmpty {
		return true, nil
	}
	if g.builder != nil {
		v, err := g.builder.BuildTile(c, t)
		if err != nil {
			return false, fmt.Errorf("build tile %v at %v: %w", t, h, err)
		}
		c.Visual = v
	}
	c.Tile = t
	return true, nil
}

func errInvalidTile(t TileType) error {
	return fmt.Errorf("invalid tile type %d", uint8(t))
}

// TileCount возвращает число ячеек с тайлами.
func (g *Grid) TileCount() int {
	n := 0
	for _, c := range g.order {
		if c.HasTile() {
			n++
		}
	}
	return n
}

// ActiveCount возвращает размер активного набора.
func (g *Grid) ActiveCount() int {
	return len(g.active)
}

// IsActive сообщает, обновляется ли ячейка на каждом тике.
func (g *Grid) IsActive(h Hex) bool {
	_, ok := g.active[h]
	return ok
}

// Tick продвигает анимацию интенсивности на dt секунд.
// Ячейки, до которых дотягивается поле, становятся активными; ячейки,
// у которых и интенсивность, и цель ниже эпсилона, выпадают из набора.
func (g *Grid) Tick(dt float64, field Field) {
	if field == nil {
		field = NoField
	}
	if reach := field.Reach(); reach >= 0 {
		for _, src := range field.Sources() {
			g.visitRange(src, reach, func(c *Cell) {
				g.active[c.Hex] = struct{}{}
			})
		}
	}

	k := 0.0
	if dt > 0 {
		k = math.Min(1, g.lerpSpeed*dt)
	}

	for h := range g.active {
		c := g.cells[h]
		goal := math.Min(c.TargetIntensity+field.ContributionAt(h), g.maxIntensity)
		next := c.Intensity + (goal-c.Intensity)*k
		next = utils.Clamp(next, 0, g.maxIntensity)
		if next < g.epsilon && goal < g.epsilon {
			next = 0
			delete(g.active, h)
		}
		if next != c.Intensity {
			c.Intensity = next
			g.recolor(c)
		}
	}
}

// visitRange вызывает fn для каждой ячейки сетки в радиусе radius от center.
func (g *Grid) visitRange(center Hex, radius int, fn func(*Cell)) {
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			if c, ok := g.cells[center.Add(Hex{Q: q, R: r})]; ok {
				fn(c)
			}
		}
	}
}

// HexesInRange возвращает гексы сетки в радиусе radius от center.
func (g *Grid) HexesInRange(center Hex, radius int) []Hex {
	var result []Hex
	g.visitRange(center, radius, func(c *Cell) {
		result = append(result, c.Hex)
	})
	return result
}

func (g *Grid) recolor(c *Cell) {
	col, alpha := g.glow.Color(c.Intensity)
	g.lines.setColor(c.Offset, float32(col.R), float32(col.G), float32(col.B), float32(alpha))
}

// Close освобождает визуалы всех тайлов.
func (g *Grid) Close() {
	for _, c := range g.order {
		c.releaseVisual()
		c.Tile = TileEmpty
	}
	g.hovered = nil
}
