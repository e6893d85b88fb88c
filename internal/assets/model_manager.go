// internal/assets/model_manager.go
package assets

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/config"
	"go-hex-ripple/internal/defs"
	"go-hex-ripple/internal/log"
	"go-hex-ripple/pkg/hexmap"
)

// TileModel — визуал тайла для raylib. Модель принадлежит ячейке и выгружается в Dispose.
type TileModel struct {
	hexmap.MeshVisual
	Model    rl.Model
	Position rl.Vector3
	Color    rl.Color
	Height   float32
	manager  *ModelManager
}

// Dispose выгружает модель из видеопамяти.
func (v *TileModel) Dispose() {
	rl.UnloadModel(v.Model)
	if v.manager != nil {
		v.manager.live--
	}
}

// ModelManager строит призмы тайлов по определениям. Реализует hexmap.TileBuilder.
type ModelManager struct {
	tiles   defs.TileLibrary
	hexSize float64
	log     *log.Logger
	live    int
}

// NewModelManager создает менеджер моделей. Вызывать после rl.InitWindow.
func NewModelManager(tiles defs.TileLibrary, hexSize float64, logger *log.Logger) *ModelManager {
	if logger == nil {
		logger = log.Discard()
	}
	return &ModelManager{tiles: tiles, hexSize: hexSize, log: logger}
}

// BuildTile генерирует шестигранную призму для ячейки.
func (m *ModelManager) BuildTile(c *hexmap.Cell, t hexmap.TileType) (hexmap.TileVisual, error) {
	def, ok := m.tiles.Get(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", defs.ErrUnknownTileType, t)
	}

	radius := float32(m.hexSize * config.TileScale)
	height := float32(def.Height * m.hexSize)
	mesh := rl.GenMeshCylinder(radius, height, 6)
	model := rl.LoadModelFromMesh(mesh)
	if model.MeshCount == 0 {
		return nil, fmt.Errorf("failed to build model for tile %v", t)
	}

	rgb := def.RGB()
	r, g, b := rgb.RGB255()
	m.live++
	m.log.Debugf("built %s prism at %v", def.Name, c.Hex)
	return &TileModel{
		Model:    model,
		Position: rl.NewVector3(float32(c.X), config.TileBaseLift, float32(c.Z)),
		Color:    rl.NewColor(r, g, b, 255),
		Height:   height,
		manager:  m,
	}, nil
}

// Live — число не выгруженных моделей тайлов.
func (m *ModelManager) Live() int { return m.live }
