package hexmap

import (
	"errors"
	"math"
)

// ErrDegenerateGeometry — вершины гекса не удалось построить (нулевой или NaN радиус).
var ErrDegenerateGeometry = errors.New("hexmap: degenerate hex geometry")

// Point — точка на плоскости земли.
type Point struct {
	X, Z float64
}

// HexVertices возвращает шесть вершин гекса с центром (cx, cz).
// Вершины лежат под углами 60°*i - 30° на расстоянии size*scale от центра.
func HexVertices(cx, cz, size, scale float64) [6]Point {
	var pts [6]Point
	radius := size * scale
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) - math.Pi/6
		pts[i] = Point{
			X: cx + radius*math.Cos(angle),
			Z: cz + radius*math.Sin(angle),
		}
	}
	return pts
}

// HexVerticesChecked — HexVertices с проверкой на вырожденную геометрию.
func HexVerticesChecked(cx, cz, size, scale float64) ([6]Point, error) {
	radius := size * scale
	if !(radius > 0) || math.IsInf(radius, 0) || math.IsNaN(cx) || math.IsNaN(cz) {
		return [6]Point{}, ErrDegenerateGeometry
	}
	return HexVertices(cx, cz, size, scale), nil
}
