// internal/daytime/palette.go
package daytime

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lighting — освещение сцены в конкретный момент суток.
type Lighting struct {
	Zenith       colorful.Color // небо над головой
	Horizon      colorful.Color // небо у горизонта
	Sun          colorful.Color
	Ambient      colorful.Color
	SunIntensity float64
	Stars        float64 // видимость звёзд 0..1
}

type keyframe struct {
	t float64 // доля суток, 0 = полдень
	Lighting
}

func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// keyframes упорядочены по t и замыкаются: 0 == 1.
var keyframes = []keyframe{
	{0.00, Lighting{Zenith: hex("#336be6"), Horizon: hex("#94bff2"), Sun: hex("#fffaeb"), Ambient: hex("#292e42"), SunIntensity: 1.2, Stars: 0}},
	{0.22, Lighting{Zenith: hex("#243399"), Horizon: hex("#e6852e"), Sun: hex("#ffa640"), Ambient: hex("#1a1f33"), SunIntensity: 0.9, Stars: 0}},
	{0.30, Lighting{Zenith: hex("#141a47"), Horizon: hex("#803847"), Sun: hex("#b3668c"), Ambient: hex("#0f1224"), SunIntensity: 0.25, Stars: 0.4}},
	{0.50, Lighting{Zenith: hex("#05081a"), Horizon: hex("#0a0a14"), Sun: hex("#6673a6"), Ambient: hex("#080a17"), SunIntensity: 0.12, Stars: 1}},
	{0.70, Lighting{Zenith: hex("#0f1440"), Horizon: hex("#662e3d"), Sun: hex("#bf6b99"), Ambient: hex("#0f1224"), SunIntensity: 0.2, Stars: 0.5}},
	{0.78, Lighting{Zenith: hex("#1f2e8c"), Horizon: hex("#e07338"), Sun: hex("#ff9947"), Ambient: hex("#171a2b"), SunIntensity: 0.7, Stars: 0}},
}

// Sample возвращает освещение для доли суток t (любое число, берётся по модулю 1).
func Sample(t float64) Lighting {
	t = wrap(t)
	n := len(keyframes)
	for i := 0; i < n; i++ {
		a := keyframes[i]
		b := keyframes[(i+1)%n]
		end := b.t
		if i == n-1 {
			end = 1
		}
		if t >= a.t && t < end {
			return blend(a.Lighting, b.Lighting, (t-a.t)/(end-a.t))
		}
	}
	return keyframes[0].Lighting
}

func blend(a, b Lighting, k float64) Lighting {
	return Lighting{
		Zenith:       a.Zenith.BlendLab(b.Zenith, k).Clamped(),
		Horizon:      a.Horizon.BlendLab(b.Horizon, k).Clamped(),
		Sun:          a.Sun.BlendLab(b.Sun, k).Clamped(),
		Ambient:      a.Ambient.BlendLab(b.Ambient, k).Clamped(),
		SunIntensity: a.SunIntensity + (b.SunIntensity-a.SunIntensity)*k,
		Stars:        a.Stars + (b.Stars-a.Stars)*k,
	}
}

func wrap(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	return t
}
