// internal/system/render.go
package system

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/assets"
	"go-hex-ripple/internal/daytime"
	"go-hex-ripple/pkg/hexmap"
)

// RenderSystemRL рисует линии сетки и призмы тайлов. Вызывать внутри BeginMode3D.
type RenderSystemRL struct {
	grid    *hexmap.Grid
	effects *VisualEffectSystem
	camera  *rl.Camera3D
}

func NewRenderSystemRL(grid *hexmap.Grid, effects *VisualEffectSystem) *RenderSystemRL {
	return &RenderSystemRL{grid: grid, effects: effects}
}

func (s *RenderSystemRL) SetCamera(camera *rl.Camera3D) {
	s.camera = camera
}

// Draw рисует сетку при заданном освещении.
func (s *RenderSystemRL) Draw(light daytime.Lighting) {
	s.drawLines()
	s.drawTiles(light)
}

func (s *RenderSystemRL) drawLines() {
	lines := s.grid.Lines()
	for i := 0; i+1 < lines.VertexCount(); i += 2 {
		p0, col := lines.Vertex(i)
		p1, _ := lines.Vertex(i + 1)
		c := rl.NewColor(unit8(col[0]), unit8(col[1]), unit8(col[2]), unit8(col[3]))
		rl.DrawLine3D(rl.NewVector3(p0[0], p0[1], p0[2]), rl.NewVector3(p1[0], p1[1], p1[2]), c)
	}
}

func (s *RenderSystemRL) drawTiles(light daytime.Lighting) {
	shade := float32(0.35 + 0.65*min(light.SunIntensity, 1))
	for _, c := range s.grid.Cells() {
		tm, ok := c.Visual.(*assets.TileModel)
		if !ok {
			continue
		}
		glow := float32(min(c.Intensity, 1))
		k := shade + (1-shade)*glow
		tint := rl.NewColor(scale8(tm.Color.R, k), scale8(tm.Color.G, k), scale8(tm.Color.B, k), 255)

		sy := float32(1)
		if s.effects != nil {
			sy = s.effects.Scale(c.Hex)
		}
		// 30°: у GenMeshCylinder вершина на оси X, у сетки — плоский верх
		rl.DrawModelEx(tm.Model, tm.Position, rl.NewVector3(0, 1, 0), 30, rl.NewVector3(1, sy, 1), tint)
		rl.DrawModelWiresEx(tm.Model, tm.Position, rl.NewVector3(0, 1, 0), 30, rl.NewVector3(1, sy, 1), rl.Fade(rl.RayWhite, 0.15+0.5*glow))
	}
}

func unit8(v float32) uint8 {
	return uint8(min(max(v, 0), 1) * 255)
}

func scale8(c uint8, k float32) uint8 {
	return uint8(min(float32(c)*k, 255))
}
