// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"

	"go-hex-ripple/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// Origin — центральный гекс сетки.
var Origin = Hex{}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 0, R: -1}, {Q: -1, R: 0},
	{Q: -1, R: 1}, {Q: 0, R: 1}, {Q: 1, R: -1},
}

// ringDirections — соседи в порядке обхода кольца.
var ringDirections = [6]Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// ToWorld конвертирует гекс в мировые координаты на плоскости земли (x, z)
func (h Hex) ToWorld(hexSize float64) (x, z float64) {
	return AxialToWorld(h.Q, h.R, hexSize)
}

// AxialToWorld — то же, что ToWorld, для голой пары (q, r).
func AxialToWorld(q, r int, hexSize float64) (x, z float64) {
	x = hexSize * Sqrt3 * (float64(q) + float64(r)/2)
	z = hexSize * (3.0 / 2.0 * float64(r))
	return
}

// WorldToHex конвертирует точку плоскости земли в гекс.
// Дробные осевые координаты округляются через кубические,
// иначе у границ гексов получается соседняя ячейка.
func WorldToHex(x, z, hexSize float64) Hex {
	q := (Sqrt3/3*x - 1.0/3*z) / hexSize
	r := (2.0 / 3 * z) / hexSize
	return axialRound(q, r)
}

// AxialDistance вычисляет расстояние между (q1, r1) и (q2, r2)
func AxialDistance(q1, r1, q2, r2 int) int {
	dq := q1 - q2
	dr := r1 - r2
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	return AxialDistance(h.Q, h.R, to.Q, to.R)
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract возвращает разность двух гексов
func (h Hex) Subtract(other Hex) Hex {
	return Hex{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hex) Scale(factor int) Hex {
	return Hex{h.Q * factor, h.R * factor}
}

// AllPossibleNeighbors возвращает всех возможных соседей гекса
func (h Hex) AllPossibleNeighbors() []Hex {
	result := make([]Hex, 0, 6)
	for _, d := range NeighborDirections {
		result = append(result, h.Add(d))
	}
	return result
}

// Ring возвращает гексы ровно на расстоянии radius от центра.
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	results := make([]Hex, 0, 6*radius)
	// Стартуем с угла (-1, +1) и обходим шесть сторон.
	h := center.Add(ringDirections[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			results = append(results, h)
			h = h.Add(ringDirections[side])
		}
	}
	return results
}

// Spiral возвращает все гексы в радиусе radius, кольцо за кольцом от центра.
func Spiral(center Hex, radius int) []Hex {
	if radius < 0 {
		return nil
	}
	results := make([]Hex, 0, 3*radius*radius+3*radius+1)
	for k := 0; k <= radius; k++ {
		results = append(results, Ring(center, k)...)
	}
	return results
}
