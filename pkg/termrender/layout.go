// pkg/termrender/layout.go
package termrender

import (
	"math"

	"go-hex-ripple/pkg/hexmap"
)

const (
	// ColsPerUnit: соседи по q отстоят на 4 колонки, по r сдвиг на 2.
	ColsPerUnit = 4 / hexmap.Sqrt3
	// RowsPerUnit: один ряд на шаг r.
	RowsPerUnit = 2.0 / 3.0
)

// Layout переводит мировые координаты плоскости в клетки терминала и обратно.
type Layout struct {
	CenterCol, CenterRow int
	HexSize              float64
}

// NewLayout центрирует сетку в прямоугольнике top..bottom экрана ширины width.
func NewLayout(width, top, bottom int, hexSize float64) Layout {
	return Layout{CenterCol: width / 2, CenterRow: (top + bottom) / 2, HexSize: hexSize}
}

// ToScreen: клетка терминала для мировой точки.
func (l Layout) ToScreen(x, z float64) (col, row int) {
	col = l.CenterCol + int(math.Round(x/l.HexSize*ColsPerUnit))
	row = l.CenterRow + int(math.Round(z/l.HexSize*RowsPerUnit))
	return
}

// ToWorld: мировая точка для клетки терминала.
func (l Layout) ToWorld(col, row int) (x, z float64) {
	x = float64(col-l.CenterCol) / ColsPerUnit * l.HexSize
	z = float64(row-l.CenterRow) / RowsPerUnit * l.HexSize
	return
}

// HexAt: гекс под клеткой терминала.
func (l Layout) HexAt(col, row int) hexmap.Hex {
	x, z := l.ToWorld(col, row)
	return hexmap.WorldToHex(x, z, l.HexSize)
}
