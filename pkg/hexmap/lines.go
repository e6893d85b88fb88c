package hexmap

// VerticesPerCell — 6 рёбер по 2 конца.
const VerticesPerCell = 12

// LineBuffer — общий буфер линий всей сетки: позиции (xyz) и цвета (rgba)
// по вершинам. Слот ячейки задаётся Cell.Offset.
type LineBuffer struct {
	Positions []float32
	Colors    []float32

	// Version увеличивается при каждом изменении цвета.
	Version uint64

	dirty     []int
	dirtyMark []bool
}

func newLineBuffer(cells int) *LineBuffer {
	return &LineBuffer{
		Positions: make([]float32, cells*VerticesPerCell*3),
		Colors:    make([]float32, cells*VerticesPerCell*4),
		dirtyMark: make([]bool, cells),
	}
}

// VertexCount возвращает число вершин в буфере.
func (b *LineBuffer) VertexCount() int {
	return len(b.Positions) / 3
}

// SegmentCount возвращает число отрезков (пар вершин).
func (b *LineBuffer) SegmentCount() int {
	return b.VertexCount() / 2
}

// Vertex возвращает позицию и цвет вершины i.
func (b *LineBuffer) Vertex(i int) (pos [3]float32, col [4]float32) {
	copy(pos[:], b.Positions[i*3:i*3+3])
	copy(col[:], b.Colors[i*4:i*4+4])
	return
}

// DirtyCells возвращает слоты, перекрашенные после последнего ClearDirty.
func (b *LineBuffer) DirtyCells() []int {
	return b.dirty
}

// ClearDirty сбрасывает список изменённых слотов.
func (b *LineBuffer) ClearDirty() {
	for _, slot := range b.dirty {
		b.dirtyMark[slot] = false
	}
	b.dirty = b.dirty[:0]
}

func (b *LineBuffer) setGeometry(slot int, pts [6]Point, y float32) {
	base := slot * VerticesPerCell * 3
	for edge := 0; edge < 6; edge++ {
		a, c := pts[edge], pts[(edge+1)%6]
		i := base + edge*6
		b.Positions[i+0] = float32(a.X)
		b.Positions[i+1] = y
		b.Positions[i+2] = float32(a.Z)
		b.Positions[i+3] = float32(c.X)
		b.Positions[i+4] = y
		b.Positions[i+5] = float32(c.Z)
	}
}

func (b *LineBuffer) setColor(slot int, r, g, bl, a float32) {
	base := slot * VerticesPerCell * 4
	for v := 0; v < VerticesPerCell; v++ {
		i := base + v*4
		b.Colors[i+0] = r
		b.Colors[i+1] = g
		b.Colors[i+2] = bl
		b.Colors[i+3] = a
	}
	if !b.dirtyMark[slot] {
		b.dirtyMark[slot] = true
		b.dirty = append(b.dirty, slot)
	}
	b.Version++
}
