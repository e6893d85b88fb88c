// internal/system/visual_effect.go
package system

import (
	"go-hex-ripple/internal/event"
	"go-hex-ripple/internal/utils"
	"go-hex-ripple/pkg/hexmap"
)

const placeFlashDuration = 0.35

// Flash — короткая анимация "появления" тайла.
type Flash struct {
	Timer    float64
	Duration float64
}

// VisualEffectSystem ведёт вспышки поставленных тайлов.
type VisualEffectSystem struct {
	flashes map[hexmap.Hex]*Flash
}

// NewVisualEffectSystem создает систему и подписывает её на TilePlaced.
func NewVisualEffectSystem(dispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{flashes: make(map[hexmap.Hex]*Flash)}
	if dispatcher != nil {
		dispatcher.Subscribe(event.TilePlaced, s)
		dispatcher.Subscribe(event.TileRemoved, s)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.CellData)
	if !ok {
		return
	}
	switch e.Type {
	case event.TilePlaced:
		s.flashes[data.Hex] = &Flash{Timer: placeFlashDuration, Duration: placeFlashDuration}
	case event.TileRemoved:
		delete(s.flashes, data.Hex)
	}
}

// Update обновляет таймеры вспышек.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for h, f := range s.flashes {
		f.Timer -= deltaTime
		if f.Timer <= 0 {
			delete(s.flashes, h)
		}
	}
}

// Scale — множитель высоты тайла на h: от 0.2 до 1 по мере вспышки.
func (s *VisualEffectSystem) Scale(h hexmap.Hex) float32 {
	f, ok := s.flashes[h]
	if !ok {
		return 1
	}
	p := 1 - f.Timer/f.Duration
	// небольшой перелёт в конце
	return utils.Lerp(0.2, 1, float32(p)) + float32(0.25*p*(1-p))
}

func (s *VisualEffectSystem) Active() int { return len(s.flashes) }
