// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	noteAttack  = 8 * time.Millisecond
	noteRelease = 0.6 // доля длительности на затухание
)

// envelope — атака и линейное затухание поверх потока.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, sr beep.SampleRate, dur time.Duration) *envelope {
	total := sr.N(dur)
	return &envelope{
		streamer: s,
		attack:   min(sr.N(noteAttack), total),
		release:  int(float64(total) * noteRelease),
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if start := e.total - e.release; e.pos >= start && e.release > 0 {
			vol = min(vol, float64(e.total-e.pos)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume по образцу effects.Volume: 0 даёт тишину вместо -Inf.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// NewNote собирает поток одной ноты: основной тон и октава с огибающей.
func NewNote(sr beep.SampleRate, freq float64, dur time.Duration, vol float64) (beep.Streamer, error) {
	fund, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	over, err := generators.SineTone(sr, freq*2)
	if err != nil {
		// октава выше Найквиста, играем только основной тон
		over = generators.Silence(-1)
	}
	mixed := beep.Mix(volume(fund, 0.75), volume(over, 0.25))
	return volume(newEnvelope(mixed, sr, dur), vol), nil
}

// RenderPCM рендерит поток в 16-бит стерео little-endian.
func RenderPCM(s beep.Streamer, maxSamples int) []byte {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, maxSamples*4)
	for left := maxSamples; left > 0; {
		chunk := buf
		if left < len(chunk) {
			chunk = chunk[:left]
		}
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(chunk[i][1])))
		}
		left -= n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = max(-1, min(1, v))
	return int16(v * math.MaxInt16)
}
