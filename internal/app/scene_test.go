package app

import (
	"errors"
	"testing"

	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/event"
	"go-hex-ripple/pkg/hexmap"
)

type fakeVisual struct {
	hexmap.MeshVisual
	disposed *int
}

func (v fakeVisual) Dispose() { *v.disposed++ }

type fakeBuilder struct {
	built    int
	disposed int
	fail     bool
}

func (b *fakeBuilder) BuildTile(c *hexmap.Cell, t hexmap.TileType) (hexmap.TileVisual, error) {
	if b.fail {
		return nil, errors.New("no gpu")
	}
	b.built++
	return fakeVisual{disposed: &b.disposed}, nil
}

func newTestScene(t *testing.T, radius int) (*Scene, *fakeBuilder) {
	t.Helper()
	s := config.DefaultSettings()
	s.Radius = radius
	b := &fakeBuilder{}
	sc, err := NewScene(s, nil, b, nil)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return sc, b
}

func record(d *event.Dispatcher, types ...event.EventType) *[]event.Event {
	var got []event.Event
	for _, tp := range types {
		d.Subscribe(tp, event.ListenerFunc(func(e event.Event) { got = append(got, e) }))
	}
	return &got
}

func TestNewSceneCellCount(t *testing.T) {
	sc, _ := newTestScene(t, 2)
	if sc.Grid.Len() != 19 {
		t.Fatalf("got %d cells, want 19", sc.Grid.Len())
	}
	if sc.ID.String() == "" {
		t.Fatal("empty session id")
	}
	if sc.SelectedTile() != hexmap.TileA {
		t.Fatalf("default selection = %v", sc.SelectedTile())
	}
}

func TestPointerDownPlacesAndTriggers(t *testing.T) {
	sc, b := newTestScene(t, 3)
	got := record(sc.EventDispatcher, event.TilePlaced, event.CellTriggered)

	x, z := hexmap.Hex{Q: 1, R: 1}.ToWorld(config.HexSize)
	if !sc.PointerDown(x, z) {
		t.Fatal("PointerDown inside grid returned false")
	}
	if len(*got) != 2 || (*got)[0].Type != event.TilePlaced || (*got)[1].Type != event.CellTriggered {
		t.Fatalf("events = %+v", *got)
	}
	data := (*got)[1].Data.(event.CellData)
	if data.Hex != (hexmap.Hex{Q: 1, R: 1}) || data.Tile != hexmap.TileA || data.Distance != 2 {
		t.Fatalf("trigger data = %+v", data)
	}
	if b.built != 1 || sc.Waves.ActiveCount() != 1 {
		t.Fatalf("built=%d waves=%d", b.built, sc.Waves.ActiveCount())
	}

	// повторный клик тем же тайлом только запускает волну
	sc.PointerDown(x, z)
	if b.built != 1 || sc.Waves.ActiveCount() != 2 {
		t.Fatalf("second click: built=%d waves=%d", b.built, sc.Waves.ActiveCount())
	}

	if sc.PointerDown(100, 100) {
		t.Fatal("PointerDown outside grid returned true")
	}
}

func TestEraser(t *testing.T) {
	sc, b := newTestScene(t, 2)
	h := hexmap.Hex{Q: -1, R: 0}
	if !sc.PlaceTile(h, hexmap.TileD) {
		t.Fatal("PlaceTile failed")
	}
	got := record(sc.EventDispatcher, event.TileRemoved)

	if err := sc.SelectTile(hexmap.TileEmpty); err != nil {
		t.Fatal(err)
	}
	x, z := h.ToWorld(config.HexSize)
	sc.PointerDown(x, z)
	c, _ := sc.Grid.Cell(h)
	if c.HasTile() || c.Visual != nil || b.disposed != 1 {
		t.Fatalf("tile left after erase: %+v disposed=%d", c, b.disposed)
	}
	if len(*got) != 1 || (*got)[0].Data.(event.CellData).Tile != hexmap.TileD {
		t.Fatalf("removed events = %+v", *got)
	}
	if sc.PointerErase(x, z) {
		t.Fatal("erasing empty cell should report false")
	}
	if err := sc.SelectTile(hexmap.TileTypeCount); err == nil {
		t.Fatal("expected error for invalid tile type")
	}
}

func TestBuildFailureKeepsCellEmpty(t *testing.T) {
	sc, b := newTestScene(t, 1)
	b.fail = true
	if sc.PlaceTile(hexmap.Origin, hexmap.TileB) {
		t.Fatal("PlaceTile should fail when builder fails")
	}
	if sc.Grid.TileCount() != 0 {
		t.Fatal("tile recorded despite build failure")
	}
}

func TestPointerMoveHover(t *testing.T) {
	sc, _ := newTestScene(t, 2)
	got := record(sc.EventDispatcher, event.HoverChanged)

	x, z := hexmap.Hex{Q: 1, R: 0}.ToWorld(config.HexSize)
	sc.PointerMove(x, z)
	sc.PointerMove(x+0.1, z) // та же ячейка
	if len(*got) != 1 {
		t.Fatalf("got %d hover events, want 1", len(*got))
	}
	c, _ := sc.Grid.Cell(hexmap.Hex{Q: 1, R: 0})
	if c.TargetIntensity != 1 {
		t.Fatalf("hover target = %v", c.TargetIntensity)
	}

	sc.PointerMove(50, 50)
	if _, ok := sc.Grid.Hovered(); ok || c.TargetIntensity != 0 {
		t.Fatal("hover not cleared outside grid")
	}
	sc.PointerLeave()
	if len(*got) != 2 {
		t.Fatalf("got %d hover events, want 2", len(*got))
	}
}

func TestUpdateExpiresWaves(t *testing.T) {
	sc, _ := newTestScene(t, 4)
	got := record(sc.EventDispatcher, event.WavesExpired)
	sc.Trigger(hexmap.Origin)

	sc.Update(0.05)
	if !sc.Grid.IsActive(hexmap.Hex{Q: 0, R: 0}) {
		t.Fatal("origin not active after trigger")
	}
	for i := 0; i < 40; i++ {
		sc.Update(0.05)
	}
	if sc.Waves.ActiveCount() != 0 || len(*got) != 1 {
		t.Fatalf("waves=%d expired events=%d", sc.Waves.ActiveCount(), len(*got))
	}
	if st := sc.Stats(); st.WavesTriggered != 1 || st.WavesExpired != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestUpdateClampsAndPauses(t *testing.T) {
	sc, _ := newTestScene(t, 1)
	sc.Update(5)
	if sc.Now() != config.MaxDeltaTime {
		t.Fatalf("now = %v, want %v", sc.Now(), config.MaxDeltaTime)
	}
	sc.TogglePause()
	clock := sc.Clock.Time()
	sc.Update(0.05)
	if sc.Now() != config.MaxDeltaTime || sc.Clock.Time() != clock {
		t.Fatal("paused scene advanced")
	}
	sc.TogglePause()
	if sc.IsPaused() {
		t.Fatal("still paused")
	}
	sc.Update(-1)
	if sc.Now() != config.MaxDeltaTime {
		t.Fatal("negative dt moved time")
	}
}

func TestScatterTiles(t *testing.T) {
	a, _ := newTestScene(t, 6)
	b, _ := newTestScene(t, 6)
	na := a.ScatterTiles(42, 0.7)
	nb := b.ScatterTiles(42, 0.7)
	if na != nb || na == 0 {
		t.Fatalf("scatter not deterministic or empty: %d vs %d", na, nb)
	}
	if c, _ := a.Grid.Cell(hexmap.Origin); c.HasTile() {
		t.Fatal("origin should stay empty")
	}
	if a.ScatterTiles(1, 0) != 0 {
		t.Fatal("zero coverage placed tiles")
	}
	if n := a.ClearTiles(); n != na || a.Grid.TileCount() != 0 {
		t.Fatalf("cleared %d of %d", n, na)
	}
}

func TestStatsAndClose(t *testing.T) {
	sc, b := newTestScene(t, 2)
	sc.PlaceTile(hexmap.Hex{Q: 1, R: -1}, hexmap.TileC)
	sc.PlaceTile(hexmap.Hex{Q: 0, R: 1}, hexmap.TileB)
	st := sc.Stats()
	if st.TilesPlaced != 2 || st.Tiles != 2 {
		t.Fatalf("stats = %+v", st)
	}
	if len(st.Lines()) != 4 {
		t.Fatalf("lines = %v", st.Lines())
	}
	sc.Close()
	if b.disposed != 2 || sc.Grid.TileCount() != 0 {
		t.Fatalf("disposed=%d tiles=%d", b.disposed, sc.Grid.TileCount())
	}
}
