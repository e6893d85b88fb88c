package hexmap

import (
	"errors"
	"math"
	"testing"
)

type fakeVisual struct {
	MeshVisual
	disposed int
}

func (v *fakeVisual) Dispose() { v.disposed++ }

type fakeBuilder struct {
	built []*fakeVisual
	err   error
}

func (b *fakeBuilder) BuildTile(c *Cell, t TileType) (TileVisual, error) {
	if b.err != nil {
		return nil, b.err
	}
	v := &fakeVisual{}
	b.built = append(b.built, v)
	return v, nil
}

// staticField отдаёт фиксированный вклад в одном гексе.
type staticField struct {
	at    Hex
	value float64
}

func (f staticField) ContributionAt(h Hex) float64 {
	if h == f.at {
		return f.value
	}
	return 0
}
func (f staticField) Sources() []Hex { return []Hex{f.at} }
func (f staticField) Reach() int     { return 0 }

func newTestGrid(t *testing.T, radius int) (*Grid, *fakeBuilder) {
	t.Helper()
	b := &fakeBuilder{}
	g, err := NewGrid(radius, 1, b)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", radius, err)
	}
	return g, b
}

func TestGridCellCount(t *testing.T) {
	for radius := 0; radius <= 8; radius++ {
		g, _ := newTestGrid(t, radius)
		want := 3*radius*radius + 3*radius + 1
		if g.Len() != want {
			t.Fatalf("radius %d: %d cells want %d", radius, g.Len(), want)
		}
		for _, c := range g.Cells() {
			if c.Hex.Distance(Origin) > radius {
				t.Fatalf("radius %d: cell %v outside region", radius, c.Hex)
			}
		}
	}
	g, _ := newTestGrid(t, 2)
	if g.Len() != 19 {
		t.Fatalf("radius 2 has %d cells want 19", g.Len())
	}
}

func TestNewGridRejectsBadInput(t *testing.T) {
	if _, err := NewGrid(-1, 1, nil); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("negative radius: err = %v", err)
	}
	if _, err := NewGrid(2, 0, nil); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("zero size: err = %v", err)
	}
	if _, err := NewGrid(2, 1, nil, WithLineScale(0)); !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("zero line scale: err = %v", err)
	}
}

func TestCellAt(t *testing.T) {
	g, _ := newTestGrid(t, 3)
	x, z := Hex{2, -1}.ToWorld(1)
	c, ok := g.CellAt(x+0.1, z-0.1)
	if !ok || c.Hex != (Hex{2, -1}) {
		t.Fatalf("CellAt = %v, %v", c, ok)
	}
	if _, ok := g.CellAt(100, 100); ok {
		t.Fatal("expected no cell far outside the grid")
	}
}

func TestPlaceTileReplacesAndClears(t *testing.T) {
	g, b := newTestGrid(t, 2)
	h := Hex{1, 0}

	if ok, err := g.PlaceTile(h, TileA); !ok || err != nil {
		t.Fatalf("PlaceTile A: %v %v", ok, err)
	}
	if ok, err := g.PlaceTile(h, TileC); !ok || err != nil {
		t.Fatalf("PlaceTile C: %v %v", ok, err)
	}
	if len(b.built) != 2 || b.built[0].disposed != 1 || b.built[1].disposed != 0 {
		t.Fatalf("unexpected visual lifecycle: %+v", b.built)
	}

	if _, err := g.PlaceTile(h, TileEmpty); err != nil {
		t.Fatal(err)
	}
	c, _ := g.Cell(h)
	if c.Tile != TileEmpty || c.Visual != nil {
		t.Fatalf("after Empty: tile=%v visual=%v", c.Tile, c.Visual)
	}
	if b.built[1].disposed != 1 {
		t.Fatalf("second visual disposed %d times", b.built[1].disposed)
	}
	if len(b.built) != 2 {
		t.Fatalf("Empty placement built a visual")
	}
}

func TestPlaceTileOutOfRange(t *testing.T) {
	g, b := newTestGrid(t, 1)
	ok, err := g.PlaceTile(Hex{5, 5}, TileB)
	if ok || err != nil || len(b.built) != 0 {
		t.Fatalf("out of range placement: ok=%v err=%v built=%d", ok, err, len(b.built))
	}
}

func TestPlaceTileBuilderError(t *testing.T) {
	boom := errors.New("boom")
	g, err := NewGrid(1, 1, &fakeBuilder{err: boom})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.PlaceTile(Origin, TileA); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	if c, _ := g.Cell(Origin); c.Tile != TileEmpty {
		t.Fatalf("tile = %v after failed build", c.Tile)
	}
}

func TestCloseDisposesVisuals(t *testing.T) {
	g, b := newTestGrid(t, 2)
	g.PlaceTile(Hex{0, 1}, TileA)
	g.PlaceTile(Hex{-1, 1}, TileD)
	g.Close()
	for i, v := range b.built {
		if v.disposed != 1 {
			t.Errorf("visual %d disposed %d times", i, v.disposed)
		}
	}
	if g.TileCount() != 0 {
		t.Errorf("TileCount = %d after Close", g.TileCount())
	}
}

func TestSetHover(t *testing.T) {
	g, _ := newTestGrid(t, 2)
	a, b := Hex{0, 0}, Hex{1, -1}

	g.SetHover(a)
	ca, _ := g.Cell(a)
	if ca.TargetIntensity != 1 {
		t.Fatalf("hover target = %v", ca.TargetIntensity)
	}
	g.SetHover(b)
	cb, _ := g.Cell(b)
	if ca.TargetIntensity != 0 || cb.TargetIntensity != 1 {
		t.Fatalf("after move: a=%v b=%v", ca.TargetIntensity, cb.TargetIntensity)
	}
	if ok := g.SetHover(Hex{9, 9}); ok {
		t.Fatal("hover outside grid reported success")
	}
	if cb.TargetIntensity != 0 {
		t.Fatalf("hover outside grid left b at %v", cb.TargetIntensity)
	}
	if _, ok := g.Hovered(); ok {
		t.Fatal("hover still set")
	}
}

func TestUpdateIntensityClampsAndActivates(t *testing.T) {
	g, _ := newTestGrid(t, 1)
	g.UpdateIntensity(Origin, 3)
	c, _ := g.Cell(Origin)
	if c.TargetIntensity != 1 || !g.IsActive(Origin) {
		t.Fatalf("target=%v active=%v", c.TargetIntensity, g.IsActive(Origin))
	}
	g.UpdateIntensity(Origin, -2)
	if c.TargetIntensity != 0 {
		t.Fatalf("target=%v want 0", c.TargetIntensity)
	}
	if g.UpdateIntensity(Hex{7, 0}, 1) {
		t.Fatal("update outside grid reported success")
	}
}

func TestTickApproachesTargetAndRetires(t *testing.T) {
	g, _ := newTestGrid(t, 2)
	h := Hex{1, 0}
	g.UpdateIntensity(h, 1)
	c, _ := g.Cell(h)

	prev := 0.0
	for i := 0; i < 120; i++ {
		g.Tick(1.0/60, nil)
		if c.Intensity < prev {
			t.Fatalf("intensity decreased while rising: %v -> %v", prev, c.Intensity)
		}
		prev = c.Intensity
	}
	if math.Abs(c.Intensity-1) > 0.01 {
		t.Fatalf("intensity = %v want ~1", c.Intensity)
	}

	g.UpdateIntensity(h, 0)
	for i := 0; i < 600 && g.IsActive(h); i++ {
		g.Tick(1.0/60, nil)
	}
	if g.IsActive(h) || c.Intensity != 0 {
		t.Fatalf("cell still active=%v intensity=%v", g.IsActive(h), c.Intensity)
	}
	if g.ActiveCount() != 0 {
		t.Fatalf("active count = %d", g.ActiveCount())
	}
}

func TestTickOverdriveIsCapped(t *testing.T) {
	g, _ := newTestGrid(t, 1)
	g.UpdateIntensity(Origin, 1)
	f := staticField{at: Origin, value: 5}
	for i := 0; i < 200; i++ {
		g.Tick(0.05, f)
	}
	c, _ := g.Cell(Origin)
	if c.Intensity > DefaultMaxIntensity+1e-9 || c.Intensity < 1.9 {
		t.Fatalf("intensity = %v want close to %v", c.Intensity, DefaultMaxIntensity)
	}
}

func TestTickActivatesFieldReach(t *testing.T) {
	g, _ := newTestGrid(t, 3)
	g.Tick(1.0/60, staticField{at: Hex{1, 1}, value: 1})
	if !g.IsActive(Hex{1, 1}) {
		t.Fatal("field source not activated")
	}
	if g.IsActive(Origin) {
		t.Fatal("cell outside reach activated")
	}
}

func TestLineBufferLayout(t *testing.T) {
	g, _ := newTestGrid(t, 2)
	lines := g.Lines()
	if lines.VertexCount() != g.Len()*VerticesPerCell {
		t.Fatalf("vertex count = %d", lines.VertexCount())
	}
	for _, c := range g.Cells() {
		for v := 0; v < VerticesPerCell; v++ {
			pos, _ := lines.Vertex(c.Offset*VerticesPerCell + v)
			d := math.Hypot(float64(pos[0])-c.X, float64(pos[2])-c.Z)
			if math.Abs(d-DefaultLineScale) > 1e-4 {
				t.Fatalf("cell %v vertex %d at %v from centre", c.Hex, v, d)
			}
		}
	}
	if len(lines.DirtyCells()) != 0 {
		t.Fatal("fresh grid has dirty cells")
	}
}

func TestLineBufferTracksRecolour(t *testing.T) {
	g, _ := newTestGrid(t, 2)
	lines := g.Lines()
	before := lines.Version
	g.UpdateIntensity(Hex{0, 1}, 1)
	g.Tick(0.1, nil)

	c, _ := g.Cell(Hex{0, 1})
	dirty := lines.DirtyCells()
	if len(dirty) != 1 || dirty[0] != c.Offset {
		t.Fatalf("dirty = %v want [%d]", dirty, c.Offset)
	}
	if lines.Version == before {
		t.Fatal("version not bumped")
	}
	_, col := lines.Vertex(c.Offset * VerticesPerCell)
	base, _ := g.Glow().Color(0)
	if float64(col[2]) <= base.B {
		t.Fatalf("blue channel %v not brighter than base %v", col[2], base.B)
	}
	lines.ClearDirty()
	if len(lines.DirtyCells()) != 0 {
		t.Fatal("ClearDirty left entries")
	}
}
