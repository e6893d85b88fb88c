// internal/system/sky.go
package system

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/daytime"
)

// SkySystem рисует градиент неба и звёзды. Вызывать до BeginMode3D.
type SkySystem struct {
	stars *daytime.Starfield
}

func NewSkySystem(stars *daytime.Starfield) *SkySystem {
	return &SkySystem{stars: stars}
}

func (s *SkySystem) Draw(light daytime.Lighting, now float64) {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	zr, zg, zb := light.Zenith.RGB255()
	hr, hg, hb := light.Horizon.RGB255()
	rl.DrawRectangleGradientV(0, 0, w, h, rl.NewColor(zr, zg, zb, 255), rl.NewColor(hr, hg, hb, 255))

	if s.stars == nil || light.Stars <= 0 {
		return
	}
	for i, star := range s.stars.Stars {
		b := s.stars.Brightness(i, now, light.Stars)
		if b <= 0.01 {
			continue
		}
		x := float32(star.X) * float32(w)
		y := float32(star.Y) * float32(h) * 0.7
		rl.DrawCircleV(rl.NewVector2(x, y), float32(star.Size), rl.Fade(rl.RayWhite, float32(b)))
	}
}
