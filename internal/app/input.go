// internal/app/input.go
package app

import (
	"go-hex-ripple/internal/event"
	"go-hex-ripple/pkg/hexmap"
)

// PointerMove переносит подсветку на ячейку под (x, z). Точка вне сетки снимает подсветку.
func (s *Scene) PointerMove(x, z float64) {
	h := hexmap.WorldToHex(x, z, s.Grid.HexSize())
	prev, hadPrev := s.Grid.Hovered()
	if !s.Grid.SetHover(h) {
		if hadPrev {
			s.EventDispatcher.Dispatch(event.Event{Type: event.HoverChanged, Data: nil})
		}
		return
	}
	if !hadPrev || prev != h {
		s.EventDispatcher.Dispatch(event.Event{Type: event.HoverChanged, Data: s.cellData(h)})
	}
}

// PointerLeave — курсор ушёл с поверхности.
func (s *Scene) PointerLeave() {
	if _, ok := s.Grid.Hovered(); !ok {
		return
	}
	s.Grid.ClearHover()
	s.EventDispatcher.Dispatch(event.Event{Type: event.HoverChanged, Data: nil})
}

// PointerDown ставит выбранный тайл (ластик убирает) и запускает волну.
// Возвращает false, если точка вне сетки.
func (s *Scene) PointerDown(x, z float64) bool {
	h := hexmap.WorldToHex(x, z, s.Grid.HexSize())
	c, ok := s.Grid.Cell(h)
	if !ok {
		return false
	}

	if c.Tile != s.selected {
		if s.selected == hexmap.TileEmpty {
			s.RemoveTile(h)
		} else {
			s.PlaceTile(h, s.selected)
		}
	}
	s.Trigger(h)
	return true
}

// PointerErase убирает тайл под точкой без волны.
func (s *Scene) PointerErase(x, z float64) bool {
	return s.RemoveTile(hexmap.WorldToHex(x, z, s.Grid.HexSize()))
}

// Trigger запускает волну из h и сообщает об этом слушателям.
func (s *Scene) Trigger(h hexmap.Hex) bool {
	if !s.Grid.Contains(h) {
		return false
	}
	s.Waves.Trigger(h, s.now)
	s.EventDispatcher.Dispatch(event.Event{Type: event.CellTriggered, Data: s.cellData(h)})
	return true
}

func (s *Scene) cellData(h hexmap.Hex) event.CellData {
	d := event.CellData{Hex: h, Distance: h.Distance(hexmap.Origin)}
	if c, ok := s.Grid.Cell(h); ok {
		d.Tile = c.Tile
	}
	return d
}
