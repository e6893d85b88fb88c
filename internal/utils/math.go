// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// DialAngle переводит долю суток (0..1) в угол стрелки циферблата.
// Полдень (0) смотрит вверх, угол растёт по часовой стрелке.
func DialAngle(dayFraction float64) float32 {
	return NormalizeAngle(float32(dayFraction*2*math.Pi - math.Pi/2))
}

// DialFraction — обратное к DialAngle: точка (dx, dy) относительно центра
// циферблата (ось Y вниз, экранная) в долю суток 0..1.
func DialFraction(dx, dy float64) float64 {
	f := (math.Atan2(dy, dx) + math.Pi/2) / (2 * math.Pi)
	f -= math.Floor(f)
	return f
}

// RayGround пересекает луч (o + t·d) с плоскостью y = 0.
// ok = false, если луч параллелен плоскости или смотрит от неё.
func RayGround(ox, oy, oz, dx, dy, dz float64) (x, z float64, ok bool) {
	if math.Abs(dy) < 1e-9 {
		return 0, 0, false
	}
	t := -oy / dy
	if t < 0 {
		return 0, 0, false
	}
	return ox + dx*t, oz + dz*t, true
}
