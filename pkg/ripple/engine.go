package ripple

import (
	"math"

	"go-hex-ripple/pkg/hexmap"
)

const (
	DefaultSpeed           = 4.0
	DefaultWidth           = 1.5
	DefaultMaxDistance     = 6.0
	DefaultCap             = 5
	DefaultGain            = 2.0
	DefaultContributionCap = 1.0
)

// Engine — ограниченный список активных волн.
type Engine struct {
	waves []Wave

	speed           float64
	width           float64
	maxDistance     float64
	cap             int
	gain            float64
	contributionCap float64
}

// Option настраивает Engine.
type Option func(*Engine)

func WithSpeed(v float64) Option           { return func(e *Engine) { e.speed = v } }
func WithWidth(v float64) Option           { return func(e *Engine) { e.width = v } }
func WithMaxDistance(v float64) Option     { return func(e *Engine) { e.maxDistance = v } }
func WithCap(n int) Option                 { return func(e *Engine) { e.cap = n } }
func WithGain(v float64) Option            { return func(e *Engine) { e.gain = v } }
func WithContributionCap(v float64) Option { return func(e *Engine) { e.contributionCap = v } }

// NewEngine создаёт движок волн.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		speed:           DefaultSpeed,
		width:           DefaultWidth,
		maxDistance:     DefaultMaxDistance,
		cap:             DefaultCap,
		gain:            DefaultGain,
		contributionCap: DefaultContributionCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cap < 1 {
		e.cap = 1
	}
	e.waves = make([]Wave, 0, e.cap+1)
	return e
}

// Trigger запускает волну из h. При превышении лимита вытесняется самая старая.
func (e *Engine) Trigger(h hexmap.Hex, now float64) Wave {
	w := Wave{Origin: h, StartTime: now, Speed: e.speed, Width: e.width}
	e.waves = append(e.waves, w)
	if over := len(e.waves) - e.cap; over > 0 {
		e.waves = append(e.waves[:0], e.waves[over:]...)
	}
	return w
}

// Tick удаляет волны, прошедшие максимальную дистанцию. Возвращает число удалённых.
func (e *Engine) Tick(now float64) int {
	kept := e.waves[:0]
	for _, w := range e.waves {
		if w.Traveled(now) < e.maxDistance {
			kept = append(kept, w)
		}
	}
	expired := len(e.waves) - len(kept)
	e.waves = kept
	return expired
}

// ContributionAt суммирует вклад всех активных волн в гекс h.
// Вклад одной волны: ((1 - diff/width)^3) * gain, где diff — расстояние от
// ячейки до фронта. Сумма ограничена contributionCap.
func (e *Engine) ContributionAt(h hexmap.Hex, now float64) float64 {
	return math.Min(e.rawContribution(h, now), e.contributionCap)
}

func (e *Engine) rawContribution(h hexmap.Hex, now float64) float64 {
	total := 0.0
	for _, w := range e.waves {
		if w.Width <= 0 {
			continue
		}
		diff := math.Abs(float64(h.Distance(w.Origin)) - w.Traveled(now))
		if diff < w.Width {
			falloff := 1 - diff/w.Width
			total += falloff * falloff * falloff * e.gain
		}
	}
	return total
}

// ActiveCount возвращает число активных волн.
func (e *Engine) ActiveCount() int {
	return len(e.waves)
}

// Waves возвращает копию списка волн, от старых к новым.
func (e *Engine) Waves() []Wave {
	return append([]Wave(nil), e.waves...)
}

// Reach — радиус в гексах, в котором волна может светить.
func (e *Engine) Reach() int {
	return int(math.Ceil(e.maxDistance + e.width))
}

// Clear удаляет все волны.
func (e *Engine) Clear() {
	e.waves = e.waves[:0]
}

// At возвращает снимок поля на момент now для hexmap.Grid.Tick.
func (e *Engine) At(now float64) hexmap.Field {
	return snapshot{engine: e, now: now}
}

type snapshot struct {
	engine *Engine
	now    float64
}

func (s snapshot) ContributionAt(h hexmap.Hex) float64 { return s.engine.ContributionAt(h, s.now) }
func (s snapshot) Reach() int                          { return s.engine.Reach() }

func (s snapshot) Sources() []hexmap.Hex {
	out := make([]hexmap.Hex, 0, len(s.engine.waves))
	for _, w := range s.engine.waves {
		out = append(out, w.Origin)
	}
	return out
}
