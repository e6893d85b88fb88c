// pkg/render/sky.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-hex-ripple/internal/daytime"
)

// skyBands — число горизонтальных полос градиента.
const skyBands = 32

// SkyRenderer рисует фон: градиент от зенита к горизонту и звёзды.
type SkyRenderer struct {
	stars *daytime.Starfield
}

func NewSkyRenderer(stars *daytime.Starfield) *SkyRenderer {
	return &SkyRenderer{stars: stars}
}

func (s *SkyRenderer) Draw(screen *ebiten.Image, light daytime.Lighting, now float64) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	band := h / skyBands
	for i := 0; i < skyBands; i++ {
		k := float64(i) / (skyBands - 1)
		c := light.Zenith.BlendLab(light.Horizon, k)
		vector.DrawFilledRect(screen, 0, float32(i)*band, w, band+1, ToRGBA(c, 1), false)
	}

	if s.stars == nil || light.Stars <= 0 {
		return
	}
	for i, star := range s.stars.Stars {
		a := s.stars.Brightness(i, now, light.Stars)
		if a <= 0.01 {
			continue
		}
		x := float32(star.X) * w
		y := float32(star.Y) * h * 0.7
		vector.DrawFilledCircle(screen, x, y, float32(star.Size), starColor(a), true)
	}
}
