package ripple

import (
	"math"
	"testing"

	"go-hex-ripple/pkg/hexmap"
)

func TestWaveExpiresAfterMaxDistance(t *testing.T) {
	e := NewEngine()
	e.Trigger(hexmap.Origin, 0)
	if e.ActiveCount() != 1 {
		t.Fatalf("active = %d", e.ActiveCount())
	}

	justBefore := (DefaultMaxDistance - 0.01) / DefaultSpeed
	if n := e.Tick(justBefore); n != 0 || e.ActiveCount() != 1 {
		t.Fatalf("expired early: n=%d active=%d", n, e.ActiveCount())
	}
	after := (DefaultMaxDistance + 0.01) / DefaultSpeed
	if n := e.Tick(after); n != 1 || e.ActiveCount() != 0 {
		t.Fatalf("not expired: n=%d active=%d", n, e.ActiveCount())
	}
}

func TestCapEvictsOldest(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 5; i++ {
		e.Trigger(hexmap.Hex{Q: i, R: 0}, float64(i)*0.01)
	}
	if e.ActiveCount() != 5 {
		t.Fatalf("active = %d", e.ActiveCount())
	}
	e.Trigger(hexmap.Hex{Q: 9, R: 0}, 0.1)
	if e.ActiveCount() != 5 {
		t.Fatalf("active after 6th = %d want 5", e.ActiveCount())
	}
	waves := e.Waves()
	if waves[0].Origin != (hexmap.Hex{Q: 1, R: 0}) {
		t.Fatalf("oldest remaining = %v want (1,0)", waves[0].Origin)
	}
	if waves[4].Origin != (hexmap.Hex{Q: 9, R: 0}) {
		t.Fatalf("newest = %v", waves[4].Origin)
	}
}

func TestContributionAtFront(t *testing.T) {
	e := NewEngine()
	e.Trigger(hexmap.Origin, 0)
	// Через 0.5 с фронт проходит ровно 2 единицы.
	now := 2.0 / DefaultSpeed
	front := hexmap.Hex{Q: 2, R: -1}

	if raw := e.rawContribution(front, now); math.Abs(raw-2.0) > 1e-9 {
		t.Fatalf("raw contribution at front = %v want 2.0", raw)
	}
	if got := e.ContributionAt(front, now); got != 1.0 {
		t.Fatalf("clamped contribution at front = %v want 1.0", got)
	}
}

func TestContributionOutsideWidth(t *testing.T) {
	e := NewEngine(WithWidth(1))
	e.Trigger(hexmap.Origin, 0)
	now := 3.0 / DefaultSpeed // фронт на расстоянии 3

	for _, h := range []hexmap.Hex{{Q: 2, R: 0}, {Q: 4, R: 0}, {Q: 0, R: 0}, {Q: 5, R: -5}} {
		if got := e.ContributionAt(h, now); got != 0 {
			t.Errorf("contribution at %v (distance %d) = %v want 0", h, h.Distance(hexmap.Origin), got)
		}
	}
	if got := e.ContributionAt(hexmap.Hex{Q: 3, R: 0}, now); got == 0 {
		t.Error("no contribution on the front")
	}
}

func TestContributionCubicFalloff(t *testing.T) {
	e := NewEngine(WithWidth(2), WithContributionCap(10))
	e.Trigger(hexmap.Origin, 0)
	now := 2.0 / DefaultSpeed
	got := e.ContributionAt(hexmap.Hex{Q: 1, R: 0}, now) // diff = 1
	want := math.Pow(0.5, 3) * DefaultGain
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("contribution = %v want %v", got, want)
	}
}

func TestOverlappingWavesAreCapped(t *testing.T) {
	e := NewEngine()
	for i := 0; i < 5; i++ {
		e.Trigger(hexmap.Origin, 0)
	}
	if got := e.ContributionAt(hexmap.Origin, 0); got != DefaultContributionCap {
		t.Fatalf("contribution = %v want %v", got, DefaultContributionCap)
	}
}

func TestSnapshotDrivesGrid(t *testing.T) {
	g, err := hexmap.NewGrid(4, 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEngine()
	e.Trigger(hexmap.Origin, 0)

	now := 0.0
	for i := 0; i < 15; i++ {
		now += 1.0 / 60
		e.Tick(now)
		g.Tick(1.0/60, e.At(now))
	}
	if !g.IsActive(hexmap.Hex{Q: 1, R: 0}) {
		t.Fatal("cell on the wave front is not active")
	}
	front := 0.25 * DefaultSpeed // ~1 гекс
	c, _ := g.Cell(hexmap.Hex{Q: 1, R: 0})
	far, _ := g.Cell(hexmap.Hex{Q: 4, R: 0})
	if c.Intensity <= far.Intensity {
		t.Fatalf("cell near front (%v) not brighter than far cell: %v <= %v", front, c.Intensity, far.Intensity)
	}

	for i := 0; i < 600; i++ {
		now += 1.0 / 60
		e.Tick(now)
		g.Tick(1.0/60, e.At(now))
	}
	if e.ActiveCount() != 0 || g.ActiveCount() != 0 {
		t.Fatalf("waves=%d active cells=%d after fade", e.ActiveCount(), g.ActiveCount())
	}
}
