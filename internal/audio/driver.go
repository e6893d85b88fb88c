// internal/audio/driver.go
package audio

import (
	"math"
	"time"

	"go-hex-ripple/internal/defs"
	"go-hex-ripple/internal/event"
)

// Driver проигрывает короткие ноты. Реализации сами владеют своими горутинами.
type Driver interface {
	PlayNote(freq float64, dur time.Duration)
	Close() error
}

// Silent — драйвер без звука, используется при -mute и при ошибке инициализации.
type Silent struct{}

func (Silent) PlayNote(float64, time.Duration) {}
func (Silent) Close() error                   { return nil }

// BaseFrequency — нота центральной ячейки (A3).
const BaseFrequency = 220.0

var pentatonic = [...]int{0, 2, 4, 7, 9}

// PentatonicFrequency возвращает частоту ступени пентатоники.
// Ступень 0 = BaseFrequency, каждые пять ступеней — октава вверх.
func PentatonicFrequency(step int) float64 {
	if step < 0 {
		step = -step
	}
	octave := step / len(pentatonic)
	semis := pentatonic[step%len(pentatonic)] + 12*octave
	return BaseFrequency * math.Pow(2, float64(semis)/12)
}

// NoteListener переводит события сцены в ноты.
type NoteListener struct {
	driver   Driver
	tiles    defs.TileLibrary
	duration time.Duration
	played   int
}

func NewNoteListener(driver Driver, tiles defs.TileLibrary, duration time.Duration) *NoteListener {
	return &NoteListener{driver: driver, tiles: tiles, duration: duration}
}

// Subscribe подписывает слушателя на события волн и тайлов.
func (l *NoteListener) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.CellTriggered, l)
	d.Subscribe(event.TilePlaced, l)
}

func (l *NoteListener) OnEvent(e event.Event) {
	data, ok := e.Data.(event.CellData)
	if !ok {
		return
	}
	switch e.Type {
	case event.CellTriggered:
		freq := PentatonicFrequency(data.Distance)
		if def, ok := l.tiles.Get(data.Tile); ok {
			freq = def.NoteHz
		}
		l.play(freq, l.duration)
	case event.TilePlaced:
		if def, ok := l.tiles.Get(data.Tile); ok {
			l.play(def.NoteHz*2, l.duration/2)
		}
	}
}

func (l *NoteListener) play(freq float64, dur time.Duration) {
	l.played++
	l.driver.PlayNote(freq, dur)
}

// Played — сколько нот отправлено драйверу.
func (l *NoteListener) Played() int { return l.played }
