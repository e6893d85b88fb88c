// internal/daytime/stars.go
package daytime

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"go-hex-ripple/internal/utils"
)

// Star — звезда на небесной полусфере. X, Y в долях экрана/неба 0..1.
type Star struct {
	X, Y float64
	Size float64
}

// Starfield — фиксированный набор звёзд с мерцанием на шуме.
type Starfield struct {
	Stars []Star
	noise opensimplex.Noise
}

// NewStarfield раскладывает n звёзд детерминированно по seed.
func NewStarfield(n int, seed int64) *Starfield {
	rng := utils.NewPRNGService(seed)
	sf := &Starfield{
		Stars: make([]Star, n),
		noise: opensimplex.NewNormalized(seed),
	}
	for i := range sf.Stars {
		sf.Stars[i] = Star{
			X:    rng.Float64(),
			Y:    rng.Float64() * rng.Float64(), // гуще у зенита
			Size: rng.Range(0.5, 1.5),
		}
	}
	return sf
}

// Brightness — яркость звезды i в момент now (секунды) при видимости visible.
func (sf *Starfield) Brightness(i int, now, visible float64) float64 {
	if visible <= 0 || i < 0 || i >= len(sf.Stars) {
		return 0
	}
	s := sf.Stars[i]
	tw := sf.noise.Eval3(s.X*40, s.Y*40, now*0.8)
	return visible * (0.45 + 0.55*tw)
}
