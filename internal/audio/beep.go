// internal/audio/beep.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// BeepDriver играет ноты через speaker из gopxl/beep.
type BeepDriver struct {
	mu     sync.Mutex
	sr     beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewBeepDriver инициализирует speaker. Ошибка означает, что устройства нет.
func NewBeepDriver(sampleRate int, volume float64) (*BeepDriver, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	d := &BeepDriver{sr: sr, volume: volume, mixer: &beep.Mixer{}}
	speaker.Play(d.mixer)
	return d, nil
}

func (d *BeepDriver) PlayNote(freq float64, dur time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	note, err := NewNote(d.sr, freq, dur, d.volume)
	if err != nil {
		return
	}
	speaker.Lock()
	d.mixer.Add(note)
	speaker.Unlock()
}

func (d *BeepDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
