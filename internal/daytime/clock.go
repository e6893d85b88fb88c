// internal/daytime/clock.go
package daytime

import (
	"math"

	"go-hex-ripple/internal/event"
)

// Clock — циклическое время суток. 0 = полдень, 0.25 = закат, 0.5 = полночь, 0.75 = рассвет.
type Clock struct {
	time       float64
	length     float64 // секунд на полный цикл
	paused     bool
	hour       int
	dispatcher *event.Dispatcher
}

// NewClock создаёт часы. dispatcher может быть nil.
func NewClock(length, start float64, dispatcher *event.Dispatcher) *Clock {
	if length <= 0 {
		length = 240
	}
	c := &Clock{length: length, dispatcher: dispatcher}
	c.time = wrap(start)
	c.hour = HourOf(c.time)
	return c
}

// HourOf переводит долю суток в час 0..23.
func HourOf(t float64) int {
	h := int(math.Floor(wrap(t)*24+1e-9)) + 12
	return h % 24
}

// Update продвигает часы на dt секунд.
func (c *Clock) Update(dt float64) {
	if c.paused || dt <= 0 {
		return
	}
	c.set(c.time + dt/c.length)
}

// SetTime ставит долю суток напрямую (циферблат).
func (c *Clock) SetTime(t float64) {
	c.set(t)
}

func (c *Clock) set(t float64) {
	c.time = wrap(t)
	if h := HourOf(c.time); h != c.hour {
		c.hour = h
		if c.dispatcher != nil {
			c.dispatcher.Dispatch(event.Event{
				Type: event.HourChanged,
				Data: event.HourData{Hour: h, DayFactor: c.DayFactor()},
			})
		}
	}
}

func (c *Clock) Time() float64   { return c.time }
func (c *Clock) Hour() int        { return c.hour }
func (c *Clock) Length() float64  { return c.length }
func (c *Clock) Paused() bool     { return c.paused }
func (c *Clock) SetPaused(p bool) { c.paused = p }

// DayFactor — высота солнца, 1 в полдень и 0 в полночь.
func (c *Clock) DayFactor() float64 {
	return 0.5 + 0.5*math.Cos(2*math.Pi*c.time)
}

// Lighting возвращает текущее освещение.
func (c *Clock) Lighting() Lighting {
	return Sample(c.time)
}
