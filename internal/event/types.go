// internal/event/types.go
package event

import "go-hex-ripple/pkg/hexmap"

const (
	CellTriggered EventType = "CellTriggered" // Клик по ячейке запустил волну
	HoverChanged  EventType = "HoverChanged"  // Курсор перешёл на другую ячейку
	TilePlaced    EventType = "TilePlaced"    // Тайл поставлен
	TileRemoved   EventType = "TileRemoved"   // Тайл убран
	HourChanged   EventType = "HourChanged"   // Сменился час суток
	WavesExpired  EventType = "WavesExpired"  // Волны дошли до максимальной дистанции
)

// CellData — данные событий, связанных с ячейкой.
type CellData struct {
	Hex      hexmap.Hex
	Tile     hexmap.TileType
	Distance int // расстояние от центра сетки
}

// HourData — данные события HourChanged.
type HourData struct {
	Hour      int
	DayFactor float64
}
