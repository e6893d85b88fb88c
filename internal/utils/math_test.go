package utils

import (
	"math"
	"testing"
)

func TestDialRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9} {
		a := float64(DialAngle(f))
		got := DialFraction(math.Cos(a), math.Sin(a))
		if math.Abs(got-f) > 1e-5 {
			t.Errorf("DialFraction(DialAngle(%v)) = %v", f, got)
		}
	}
	// полдень смотрит вверх (экранный Y вниз)
	if got := DialFraction(0, -1); math.Abs(got) > 1e-9 {
		t.Fatalf("up = %v, want 0", got)
	}
	if got := DialFraction(1, 0); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("right = %v, want 0.25", got)
	}
}

func TestRayGround(t *testing.T) {
	x, z, ok := RayGround(0, 10, 0, 1, -1, 2)
	if !ok || x != 10 || z != 20 {
		t.Fatalf("got (%v, %v, %v)", x, z, ok)
	}
	if _, _, ok := RayGround(0, 10, 0, 1, 0, 0); ok {
		t.Fatal("parallel ray hit the ground")
	}
	if _, _, ok := RayGround(0, 10, 0, 0, 1, 0); ok {
		t.Fatal("upward ray hit the ground")
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(float64(got)-math.Pi) > 1e-5 {
		t.Fatalf("got %v", got)
	}
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Fatalf("Lerp = %v", got)
	}
}
