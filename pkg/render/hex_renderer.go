// pkg/render/hex_renderer.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-hex-ripple/internal/defs"
	"go-hex-ripple/pkg/hexmap"
)

// maxBatchVertices — предел вершин на один DrawTriangles с uint16-индексами.
const maxBatchVertices = 65532

// HexRenderer рисует сетку сверху: заливку тайлов и светящиеся рёбра.
type HexRenderer struct {
	grid      *hexmap.Grid
	tiles     defs.TileLibrary
	Camera    Camera
	lineWidth float32
	fillVs    []ebiten.Vertex
	fillIs    []uint16
	lineVs    []ebiten.Vertex
	lineIs    []uint16
}

func NewHexRenderer(grid *hexmap.Grid, tiles defs.TileLibrary, cam Camera, lineWidth float32) *HexRenderer {
	return &HexRenderer{
		grid:      grid,
		tiles:     tiles,
		Camera:    cam,
		lineWidth: lineWidth,
		fillVs:    make([]ebiten.Vertex, 0, 18),
		fillIs:    make([]uint16, 0, 18),
		lineVs:    make([]ebiten.Vertex, 0, grid.Lines().VertexCount()*2),
		lineIs:    make([]uint16, 0, grid.Lines().VertexCount()*3),
	}
}

// Draw рисует тайлы, затем линии сетки. shade — множитель яркости тайлов (освещение).
func (r *HexRenderer) Draw(screen *ebiten.Image, shade float64) {
	for _, c := range r.grid.Cells() {
		if c.HasTile() {
			r.drawTileFill(screen, c, shade)
		}
	}
	r.drawLines(screen)
}

func (r *HexRenderer) drawTileFill(target *ebiten.Image, c *hexmap.Cell, shade float64) {
	def, ok := r.tiles.Get(c.Tile)
	if !ok {
		return
	}
	pts := hexmap.HexVertices(c.X, c.Z, r.grid.HexSize(), 0.82)
	path := vector.Path{}
	for i, p := range pts {
		x, y := r.Camera.WorldToScreen(p.X, p.Z)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	k := shade + (1-shade)*min(c.Intensity, 1)
	fill := def.RGB()
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].SrcX, r.fillVs[i].SrcY = 1, 1
		r.fillVs[i].ColorR = float32(fill.R * k)
		r.fillVs[i].ColorG = float32(fill.G * k)
		r.fillVs[i].ColorB = float32(fill.B * k)
		r.fillVs[i].ColorA = 1
	}
	target.DrawTriangles(r.fillVs, r.fillIs, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *HexRenderer) drawLines(target *ebiten.Image) {
	lines := r.grid.Lines()
	r.lineVs, r.lineIs = r.lineVs[:0], r.lineIs[:0]
	for i := 0; i+1 < lines.VertexCount(); i += 2 {
		if len(r.lineVs)+4 > maxBatchVertices {
			r.flushLines(target)
		}
		p0, c0 := lines.Vertex(i)
		p1, c1 := lines.Vertex(i + 1)
		if c0[3] <= 0 && c1[3] <= 0 {
			continue
		}
		x0, y0 := r.Camera.WorldToScreen(float64(p0[0]), float64(p0[2]))
		x1, y1 := r.Camera.WorldToScreen(float64(p1[0]), float64(p1[2]))
		r.lineVs, r.lineIs = AppendSegmentQuad(r.lineVs, r.lineIs, x0, y0, x1, y1, r.lineWidth, c0, c1)
	}
	r.flushLines(target)
}

func (r *HexRenderer) flushLines(target *ebiten.Image) {
	if len(r.lineIs) > 0 {
		target.DrawTriangles(r.lineVs, r.lineIs, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
	r.lineVs, r.lineIs = r.lineVs[:0], r.lineIs[:0]
}

// AppendSegmentQuad добавляет прямоугольник толщины width вдоль отрезка
// с цветами концов c0 и c1 (rgba 0..1).
func AppendSegmentQuad(vs []ebiten.Vertex, is []uint16, x0, y0, x1, y1, width float32, c0, c1 [4]float32) ([]ebiten.Vertex, []uint16) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return vs, is
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	base := uint16(len(vs))
	for _, v := range [4]struct {
		x, y float32
		c    [4]float32
	}{
		{x0 + nx, y0 + ny, c0},
		{x0 - nx, y0 - ny, c0},
		{x1 + nx, y1 + ny, c1},
		{x1 - nx, y1 - ny, c1},
	} {
		cr, cg, cb, ca := vertexColor(v.c[0], v.c[1], v.c[2], v.c[3])
		vs = append(vs, ebiten.Vertex{
			DstX: v.x, DstY: v.y, SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	is = append(is, base, base+1, base+2, base+1, base+3, base+2)
	return vs, is
}
