// internal/audio/ebitenaudio/driver.go
package ebitenaudio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"go-hex-ripple/internal/audio"
)

var _ audio.Driver = (*Driver)(nil)

// Driver рендерит ноты в PCM и отдаёт их плеерам ebiten.
type Driver struct {
	mu      sync.Mutex
	ctx     *eaudio.Context
	volume  float64
	players []*eaudio.Player
}

// New принимает уже созданный контекст: ebiten допускает один на процесс.
func New(ctx *eaudio.Context, volume float64) *Driver {
	return &Driver{ctx: ctx, volume: volume}
}

func (d *Driver) PlayNote(freq float64, dur time.Duration) {
	sr := beep.SampleRate(d.ctx.SampleRate())
	note, err := audio.NewNote(sr, freq, dur, d.volume)
	if err != nil {
		return
	}
	p := d.ctx.NewPlayerFromBytes(audio.RenderPCM(note, sr.N(dur)))
	p.Play()

	d.mu.Lock()
	defer d.mu.Unlock()
	// отыгравшие плееры закрываем
	alive := d.players[:0]
	for _, old := range d.players {
		if old.IsPlaying() {
			alive = append(alive, old)
		} else {
			_ = old.Close()
		}
	}
	d.players = append(alive, p)
}

func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range d.players {
		_ = p.Close()
	}
	d.players = nil
	return nil
}
