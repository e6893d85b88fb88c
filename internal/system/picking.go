// internal/system/picking.go
package system

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/utils"
)

// GroundPoint пересекает луч из-под курсора с плоскостью земли y = 0.
func GroundPoint(camera rl.Camera3D, mouse rl.Vector2) (x, z float64, ok bool) {
	ray := rl.GetMouseRay(mouse, camera)
	return utils.RayGround(
		float64(ray.Position.X), float64(ray.Position.Y), float64(ray.Position.Z),
		float64(ray.Direction.X), float64(ray.Direction.Y), float64(ray.Direction.Z),
	)
}
