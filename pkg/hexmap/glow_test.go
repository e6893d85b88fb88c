package hexmap

import (
	"math"
	"testing"
)

func TestGlowInterpolates(t *testing.T) {
	g := DefaultGlow()
	c0, a0 := g.Color(0)
	if c0 != g.Base || a0 != g.BaseAlpha {
		t.Fatalf("intensity 0 = %v/%v", c0, a0)
	}
	c1, a1 := g.Color(1)
	if math.Abs(c1.R-g.Lit.R) > 1e-9 || math.Abs(c1.B-g.Lit.B) > 1e-9 || a1 != g.LitAlpha {
		t.Fatalf("intensity 1 = %v/%v", c1, a1)
	}
	half, _ := g.Color(0.5)
	if math.Abs(half.G-(g.Base.G+g.Lit.G)/2) > 1e-9 {
		t.Fatalf("intensity 0.5 green = %v", half.G)
	}
}

func TestGlowOverdriveScalesPeak(t *testing.T) {
	g := DefaultGlow()
	c, alpha := g.Color(1.5)
	if alpha != g.LitAlpha {
		t.Fatalf("alpha = %v", alpha)
	}
	if math.Abs(c.R-g.Peak.R*1.5) > 1e-9 {
		t.Fatalf("red = %v want %v", c.R, g.Peak.R*1.5)
	}
	if c.B != 1 {
		t.Fatalf("blue = %v want clamped to 1", c.B)
	}
}
