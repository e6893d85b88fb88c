// internal/app/scatter.go
package app

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"go-hex-ripple/pkg/hexmap"
)

const scatterFrequency = 0.18

// ScatterTiles рассыпает стартовые тайлы пятнами по шуму.
// coverage — доля ячеек (0..1), которые получат тайл. Центр остаётся пустым.
func (s *Scene) ScatterTiles(seed int64, coverage float64) int {
	if coverage <= 0 {
		return 0
	}
	placement := opensimplex.NewNormalized(seed)
	kind := opensimplex.NewNormalized(seed + 1)
	threshold := 1 - min(coverage, 1)

	placed := 0
	for _, c := range s.Grid.Cells() {
		if c.Hex == hexmap.Origin || c.HasTile() {
			continue
		}
		fq, fr := float64(c.Hex.Q)*scatterFrequency, float64(c.Hex.R)*scatterFrequency
		if placement.Eval2(fq, fr) < threshold {
			continue
		}
		band := int(kind.Eval2(fq*0.5, fr*0.5) * float64(hexmap.TileTypeCount-1))
		t := hexmap.TileA + hexmap.TileType(min(band, int(hexmap.TileTypeCount)-2))
		if _, err := s.Grid.PlaceTile(c.Hex, t); err != nil {
			s.log.Warnf("scatter %v at %v: %v", t, c.Hex, err)
			continue
		}
		placed++
	}
	s.log.Debugf("scattered %d tiles (seed %d)", placed, seed)
	return placed
}
