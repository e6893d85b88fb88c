// internal/ui/clock_dial.go
package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/daytime"
	"go-hex-ripple/internal/utils"
)

// ClockDial — циферблат суток. Полдень вверху, клик ставит время.
type ClockDial struct {
	Center rl.Vector2
	Radius float32
}

func NewClockDial(x, y, radius float32) *ClockDial {
	return &ClockDial{Center: rl.NewVector2(x, y), Radius: radius}
}

func (d *ClockDial) Contains(p rl.Vector2) bool {
	dx, dy := p.X-d.Center.X, p.Y-d.Center.Y
	return dx*dx+dy*dy <= d.Radius*d.Radius
}

// FractionAt переводит точку на циферблате в долю суток.
func (d *ClockDial) FractionAt(p rl.Vector2) float64 {
	return utils.DialFraction(float64(p.X-d.Center.X), float64(p.Y-d.Center.Y))
}

// HandEnd — конец стрелки для доли суток t.
func (d *ClockDial) HandEnd(t float64) rl.Vector2 {
	a := float64(utils.DialAngle(t))
	r := float64(d.Radius) * 0.8
	return rl.NewVector2(d.Center.X+float32(r*math.Cos(a)), d.Center.Y+float32(r*math.Sin(a)))
}

func (d *ClockDial) Draw(font rl.Font, t float64, light daytime.Lighting) {
	zr, zg, zb := light.Zenith.RGB255()
	hr, hg, hb := light.Horizon.RGB255()
	rl.DrawCircleGradient(int32(d.Center.X), int32(d.Center.Y), d.Radius, rl.NewColor(hr, hg, hb, 230), rl.NewColor(zr, zg, zb, 230))
	rl.DrawCircleLinesV(d.Center, d.Radius, rl.RayWhite)

	for i := 0; i < 24; i++ {
		a := float64(utils.DialAngle(float64(i) / 24))
		inner := float64(d.Radius) * 0.88
		if i%6 == 0 {
			inner = float64(d.Radius) * 0.75
		}
		from := rl.NewVector2(d.Center.X+float32(inner*math.Cos(a)), d.Center.Y+float32(inner*math.Sin(a)))
		to := rl.NewVector2(d.Center.X+d.Radius*float32(math.Cos(a)), d.Center.Y+d.Radius*float32(math.Sin(a)))
		rl.DrawLineV(from, to, rl.Fade(rl.RayWhite, 0.7))
	}

	sr, sg, sb := light.Sun.RGB255()
	end := d.HandEnd(t)
	rl.DrawLineEx(d.Center, end, 3, rl.RayWhite)
	rl.DrawCircleV(end, 5, rl.NewColor(sr, sg, sb, 255))

	label := fmt.Sprintf("%02d:00", daytime.HourOf(t))
	size := rl.MeasureTextEx(font, label, 16, 1)
	rl.DrawTextEx(font, label, rl.NewVector2(d.Center.X-size.X/2, d.Center.Y+d.Radius+6), 16, 1, rl.RayWhite)
}
