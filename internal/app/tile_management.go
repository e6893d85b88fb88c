// internal/app/tile_management.go
package app

import (
	"fmt"

	"go-hex-ripple/internal/event"
	"go-hex-ripple/pkg/hexmap"
)

// SelectTile выбирает тип для следующих кликов. TileEmpty — ластик.
func (s *Scene) SelectTile(t hexmap.TileType) error {
	if !t.Valid() {
		return fmt.Errorf("select tile: invalid type %d", uint8(t))
	}
	s.selected = t
	return nil
}

// SelectedTile возвращает выбранный тип.
func (s *Scene) SelectedTile() hexmap.TileType { return s.selected }

// PlaceTile ставит тайл t на h. Ошибка построения визуала логируется, тайл не ставится.
func (s *Scene) PlaceTile(h hexmap.Hex, t hexmap.TileType) bool {
	if t == hexmap.TileEmpty {
		return s.RemoveTile(h)
	}
	ok, err := s.Grid.PlaceTile(h, t)
	if err != nil {
		s.log.Errorf("place %v at %v: %v", t, h, err)
		return false
	}
	if !ok {
		return false
	}
	s.EventDispatcher.Dispatch(event.Event{Type: event.TilePlaced, Data: s.cellData(h)})
	return true
}

// RemoveTile убирает тайл с h. Возвращает false, если тайла не было.
func (s *Scene) RemoveTile(h hexmap.Hex) bool {
	c, ok := s.Grid.Cell(h)
	if !ok || !c.HasTile() {
		return false
	}
	removed := c.Tile
	if _, err := s.Grid.PlaceTile(h, hexmap.TileEmpty); err != nil {
		s.log.Errorf("remove tile at %v: %v", h, err)
		return false
	}
	s.EventDispatcher.Dispatch(event.Event{
		Type: event.TileRemoved,
		Data: event.CellData{Hex: h, Tile: removed, Distance: h.Distance(hexmap.Origin)},
	})
	return true
}

// ClearTiles убирает все тайлы.
func (s *Scene) ClearTiles() int {
	n := 0
	for _, c := range s.Grid.Cells() {
		if s.RemoveTile(c.Hex) {
			n++
		}
	}
	return n
}
