// internal/app/stats.go
package app

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"go-hex-ripple/internal/event"
)

// Stats — счётчики сессии для панели статистики.
type Stats struct {
	WavesTriggered int
	WavesExpired   int
	TilesPlaced    int
	TilesRemoved   int
	HourChanges    int
	Tiles          int
	ActiveCells    int
	ActiveWaves    int
	Hour           int
	Elapsed        float64
}

// Lines форматирует статистику для вывода построчно.
func (st Stats) Lines() []string {
	return []string{
		fmt.Sprintf("waves  %s (%d live)", humanize.Comma(int64(st.WavesTriggered)), st.ActiveWaves),
		fmt.Sprintf("tiles  %s placed, %d on grid", humanize.Comma(int64(st.TilesPlaced)), st.Tiles),
		fmt.Sprintf("active %d cells", st.ActiveCells),
		fmt.Sprintf("clock  %02d:00, %s day", st.Hour, humanize.Ordinal(st.HourChanges/24+1)),
	}
}

type statsListener struct {
	wavesTriggered int
	wavesExpired   int
	tilesPlaced    int
	tilesRemoved   int
	hourChanges    int
}

func (l *statsListener) subscribe(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.CellTriggered, event.WavesExpired, event.TilePlaced, event.TileRemoved, event.HourChanged} {
		d.Subscribe(t, l)
	}
}

func (l *statsListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CellTriggered:
		l.wavesTriggered++
	case event.WavesExpired:
		if n, ok := e.Data.(int); ok {
			l.wavesExpired += n
		}
	case event.TilePlaced:
		l.tilesPlaced++
	case event.TileRemoved:
		l.tilesRemoved++
	case event.HourChanged:
		l.hourChanges++
	}
}

// Stats собирает текущую статистику сцены.
func (s *Scene) Stats() Stats {
	return Stats{
		WavesTriggered: s.stats.wavesTriggered,
		WavesExpired:   s.stats.wavesExpired,
		TilesPlaced:    s.stats.tilesPlaced,
		TilesRemoved:   s.stats.tilesRemoved,
		HourChanges:    s.stats.hourChanges,
		Tiles:          s.Grid.TileCount(),
		ActiveCells:    s.Grid.ActiveCount(),
		ActiveWaves:    s.Waves.ActiveCount(),
		Hour:           s.Clock.Hour(),
		Elapsed:        s.now,
	}
}
