// Package ripple хранит активные волны и считает их вклад в свечение ячеек.
package ripple

import "go-hex-ripple/pkg/hexmap"

// Wave — одна расходящаяся волна.
type Wave struct {
	Origin    hexmap.Hex
	StartTime float64 // секунды сценового времени
	Speed     float64 // единиц расстояния в секунду
	Width     float64 // ширина фронта в единицах расстояния
}

// Traveled возвращает пройденное фронтом расстояние к моменту now.
func (w Wave) Traveled(now float64) float64 {
	elapsed := now - w.StartTime
	if elapsed < 0 {
		return 0
	}
	return elapsed * w.Speed
}
