package system

import (
	"testing"

	"go-hex-ripple/internal/event"
	"go-hex-ripple/pkg/hexmap"
)

func TestVisualEffectFlash(t *testing.T) {
	d := event.NewDispatcher()
	s := NewVisualEffectSystem(d)
	h := hexmap.Hex{Q: 1, R: -1}

	if got := s.Scale(h); got != 1 {
		t.Fatalf("idle scale = %v, want 1", got)
	}
	d.Dispatch(event.Event{Type: event.TilePlaced, Data: event.CellData{Hex: h}})
	if got := s.Scale(h); got < 0.19 || got > 0.21 {
		t.Fatalf("fresh flash scale = %v, want 0.2", got)
	}
	s.Update(placeFlashDuration / 2)
	if got := s.Scale(h); got <= 0.2 || got >= 1 {
		t.Fatalf("mid flash scale = %v", got)
	}
	s.Update(placeFlashDuration)
	if s.Active() != 0 || s.Scale(h) != 1 {
		t.Fatal("flash did not expire")
	}

	d.Dispatch(event.Event{Type: event.TilePlaced, Data: event.CellData{Hex: h}})
	d.Dispatch(event.Event{Type: event.TileRemoved, Data: event.CellData{Hex: h}})
	if s.Active() != 0 {
		t.Fatal("removal should cancel flash")
	}
}
