// pkg/render/camera.go
package render

// Camera: вид сверху: мир (x, z) в пиксели экрана.
type Camera struct {
	Scale            float64 // пикселей на мировую единицу
	OffsetX, OffsetY float64 // экранная позиция мировой точки (0, 0)
}

// NewCamera центрирует начало координат на экране.
func NewCamera(screenWidth, screenHeight int, scale float64) Camera {
	return Camera{Scale: scale, OffsetX: float64(screenWidth) / 2, OffsetY: float64(screenHeight) / 2}
}

// WorldToScreen переводит мировую точку в пиксели.
func (c Camera) WorldToScreen(x, z float64) (float32, float32) {
	return float32(c.OffsetX + x*c.Scale), float32(c.OffsetY + z*c.Scale)
}

// ScreenToWorld: обратное преобразование для ввода мыши.
func (c Camera) ScreenToWorld(sx, sy float64) (x, z float64) {
	return (sx - c.OffsetX) / c.Scale, (sy - c.OffsetY) / c.Scale
}

// Zoom меняет масштаб, удерживая под курсором ту же мировую точку.
func (c *Camera) Zoom(factor, sx, sy float64) {
	if factor <= 0 {
		return
	}
	x, z := c.ScreenToWorld(sx, sy)
	c.Scale = min(max(c.Scale*factor, 8), 160)
	c.OffsetX = sx - x*c.Scale
	c.OffsetY = sy - z*c.Scale
}
