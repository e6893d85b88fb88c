package hexmap

import (
	"math"
	"testing"
)

func TestWorldRoundTrip(t *testing.T) {
	for _, size := range []float64{0.5, 1, 19} {
		for q := -20; q <= 20; q++ {
			for r := -20; r <= 20; r++ {
				h := Hex{q, r}
				x, z := h.ToWorld(size)
				if got := WorldToHex(x, z, size); got != h {
					t.Fatalf("size %v: WorldToHex(ToWorld(%v)) = %v", size, h, got)
				}
			}
		}
	}
}

func TestWorldToHexInsideCell(t *testing.T) {
	const size = 1.0
	inner := size * Sqrt3 / 2
	for _, h := range Spiral(Origin, 4) {
		cx, cz := h.ToWorld(size)
		for i := 0; i < 12; i++ {
			angle := float64(i) * math.Pi / 6
			x := cx + 0.95*inner*math.Cos(angle)
			z := cz + 0.95*inner*math.Sin(angle)
			if got := WorldToHex(x, z, size); got != h {
				t.Fatalf("point (%.3f, %.3f) near %v mapped to %v", x, z, h, got)
			}
		}
	}
}

func TestAxialToWorldFormula(t *testing.T) {
	x, z := AxialToWorld(2, -1, 2)
	wantX := 2 * Sqrt3 * (2 - 0.5)
	wantZ := 2 * 1.5 * -1
	if math.Abs(x-wantX) > 1e-9 || math.Abs(z-wantZ) > 1e-9 {
		t.Fatalf("got (%v, %v) want (%v, %v)", x, z, wantX, wantZ)
	}
}

func TestAxialDistance(t *testing.T) {
	if d := AxialDistance(0, 0, 2, -1); d != 2 {
		t.Fatalf("distance to (2,-1) = %d want 2", d)
	}
	hexes := Spiral(Origin, 3)
	for _, a := range hexes {
		if a.Distance(a) != 0 {
			t.Fatalf("distance %v to itself is %d", a, a.Distance(a))
		}
		for _, b := range hexes {
			ab, ba := a.Distance(b), b.Distance(a)
			if ab != ba {
				t.Fatalf("asymmetric distance %v-%v: %d vs %d", a, b, ab, ba)
			}
			if a != b && ab == 0 {
				t.Fatalf("distinct %v and %v at distance 0", a, b)
			}
			for _, c := range hexes {
				if a.Distance(c) > ab+b.Distance(c) {
					t.Fatalf("triangle inequality broken for %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestHexVertices(t *testing.T) {
	const cx, cz, size, scale = 3.0, -2.0, 1.5, 0.8
	pts := HexVertices(cx, cz, size, scale)
	if len(pts) != 6 {
		t.Fatalf("got %d vertices", len(pts))
	}
	for i, p := range pts {
		d := math.Hypot(p.X-cx, p.Z-cz)
		if math.Abs(d-size*scale) > 1e-9 {
			t.Errorf("vertex %d at distance %v want %v", i, d, size*scale)
		}
		a1 := math.Atan2(p.Z-cz, p.X-cx)
		next := pts[(i+1)%6]
		a2 := math.Atan2(next.Z-cz, next.X-cx)
		step := math.Mod(a2-a1+2*math.Pi, 2*math.Pi)
		if math.Abs(step-math.Pi/3) > 1e-9 {
			t.Errorf("vertex %d -> %d spans %v rad", i, (i+1)%6, step)
		}
	}
	if a := math.Atan2(pts[0].Z-cz, pts[0].X-cx); math.Abs(a+math.Pi/6) > 1e-9 {
		t.Errorf("first vertex at %v rad want -30°", a)
	}
}

func TestHexVerticesCheckedRejectsDegenerate(t *testing.T) {
	for _, scale := range []float64{0, -1, math.NaN()} {
		if _, err := HexVerticesChecked(0, 0, 1, scale); err != ErrDegenerateGeometry {
			t.Errorf("scale %v: err = %v", scale, err)
		}
	}
}

func TestRingAndSpiral(t *testing.T) {
	for radius := 0; radius <= 5; radius++ {
		ring := Ring(Origin, radius)
		want := 6 * radius
		if radius == 0 {
			want = 1
		}
		if len(ring) != want {
			t.Fatalf("ring %d has %d hexes want %d", radius, len(ring), want)
		}
		seen := map[Hex]bool{}
		for _, h := range ring {
			if h.Distance(Origin) != radius {
				t.Fatalf("ring %d contains %v at distance %d", radius, h, h.Distance(Origin))
			}
			if seen[h] {
				t.Fatalf("ring %d repeats %v", radius, h)
			}
			seen[h] = true
		}
		if n := len(Spiral(Origin, radius)); n != 3*radius*radius+3*radius+1 {
			t.Fatalf("spiral %d has %d hexes", radius, n)
		}
	}
}

func TestParseTileType(t *testing.T) {
	cases := map[string]TileType{"a": TileA, "TypeB": TileB, " typec ": TileC, "d": TileD, "empty": TileEmpty}
	for in, want := range cases {
		got, err := ParseTileType(in)
		if err != nil || got != want {
			t.Errorf("ParseTileType(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParseTileType("lava"); err == nil {
		t.Error("expected error for unknown tile type")
	}
}
