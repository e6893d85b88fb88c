// internal/app/scene.go
package app

import (
	"fmt"

	"github.com/google/uuid"

	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/daytime"
	"go-hex-ripple/internal/defs"
	"go-hex-ripple/internal/event"
	"go-hex-ripple/internal/log"
	"go-hex-ripple/pkg/hexmap"
	"go-hex-ripple/pkg/ripple"
)

// Scene связывает сетку, волны, часы и события. Не потокобезопасна:
// все вызовы идут из кадрового цикла.
type Scene struct {
	ID              uuid.UUID
	Grid            *hexmap.Grid
	Waves           *ripple.Engine
	Clock           *daytime.Clock
	Stars           *daytime.Starfield
	EventDispatcher *event.Dispatcher
	Tiles           defs.TileLibrary

	log      *log.Logger
	selected hexmap.TileType
	now      float64
	isPaused bool
	stats    *statsListener
}

// NewScene собирает сцену по настройкам. builder может быть nil (терминал, тесты).
func NewScene(settings config.Settings, tiles defs.TileLibrary, builder hexmap.TileBuilder, logger *log.Logger) (*Scene, error) {
	settings = settings.Normalize()
	if logger == nil {
		logger = log.Discard()
	}
	if tiles == nil {
		tiles = defs.DefaultTileLibrary()
	}

	grid, err := hexmap.NewGrid(settings.Radius, config.HexSize, builder,
		hexmap.WithLerpSpeed(config.LerpSpeed),
		hexmap.WithEpsilon(config.ActiveEpsilon),
		hexmap.WithMaxIntensity(config.MaxIntensity),
		hexmap.WithLineScale(config.LineScale),
		hexmap.WithLineLift(config.LineLift),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	dispatcher := event.NewDispatcher()
	s := &Scene{
		ID:   uuid.New(),
		Grid: grid,
		Waves: ripple.NewEngine(
			ripple.WithSpeed(config.WaveSpeed),
			ripple.WithWidth(config.WaveWidth),
			ripple.WithMaxDistance(config.WaveMaxDistance),
			ripple.WithCap(config.WaveCap),
			ripple.WithGain(config.WaveGain),
			ripple.WithContributionCap(config.WaveContributionCap),
		),
		Clock:           daytime.NewClock(settings.DayLength, config.StartDayTime, dispatcher),
		Stars:           daytime.NewStarfield(config.StarCount, settings.Seed),
		EventDispatcher: dispatcher,
		Tiles:           tiles,
		log:             logger,
		selected:        hexmap.TileA,
		stats:           &statsListener{},
	}
	s.stats.subscribe(dispatcher)

	logger.Infof("scene %s: radius %d, %d cells, day length %.0fs", s.ID, settings.Radius, grid.Len(), settings.DayLength)
	return s, nil
}

// Update продвигает сцену на один кадр.
func (s *Scene) Update(deltaTime float64) {
	if s.isPaused {
		return
	}
	dt := min(max(deltaTime, 0), config.MaxDeltaTime)
	s.now += dt

	if expired := s.Waves.Tick(s.now); expired > 0 {
		s.EventDispatcher.Dispatch(event.Event{Type: event.WavesExpired, Data: expired})
	}
	s.Grid.Tick(dt, s.Waves.At(s.now))
	s.Clock.Update(dt)
}

// Now — время сцены в секундах (на паузе не идёт).
func (s *Scene) Now() float64 { return s.now }

func (s *Scene) TogglePause() { s.SetPaused(!s.isPaused) }

func (s *Scene) SetPaused(p bool) {
	if s.isPaused == p {
		return
	}
	s.isPaused = p
	s.log.Debugf("paused=%v at t=%.2f", p, s.now)
}

// IsPaused возвращает текущее состояние паузы.
func (s *Scene) IsPaused() bool { return s.isPaused }

// Close освобождает визуалы тайлов. Сцена после Close не используется.
func (s *Scene) Close() {
	s.Grid.Close()
	s.Waves.Clear()
	s.log.Infof("scene %s closed after %.1fs", s.ID, s.now)
}
