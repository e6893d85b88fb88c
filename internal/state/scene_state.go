// internal/state/scene_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/app"
	"go-hex-ripple/internal/system"
)

var _ State = (*SceneState)(nil)

// SceneState — основное состояние: сетка, ввод, HUD.
type SceneState struct {
	sm      *StateMachine
	scene   *app.Scene
	font    rl.Font
	camera  *rl.Camera3D
	render  *system.RenderSystemRL
	sky     *system.SkySystem
	hud     *system.HUDSystem
	effects *system.VisualEffectSystem
}

func NewSceneState(sm *StateMachine, scene *app.Scene, font rl.Font, camera *rl.Camera3D) *SceneState {
	effects := system.NewVisualEffectSystem(scene.EventDispatcher)
	s := &SceneState{
		sm:      sm,
		scene:   scene,
		font:    font,
		camera:  camera,
		render:  system.NewRenderSystemRL(scene.Grid, effects),
		sky:     system.NewSkySystem(scene.Stars),
		hud:     system.NewHUDSystem(scene, font),
		effects: effects,
	}
	s.render.SetCamera(camera)
	return s
}

// Scene возвращает сцену состояния.
func (s *SceneState) Scene() *app.Scene { return s.scene }

func (s *SceneState) Enter() {
	s.scene.SetPaused(false)
}

func (s *SceneState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace) {
		s.pause()
		return
	}
	if rl.IsKeyPressed(rl.KeyC) {
		s.scene.ClearTiles()
	}
	s.hud.HandleKeys()
	s.handleMouse()

	if s.scene.IsPaused() {
		s.pause()
		return
	}
	s.scene.Update(deltaTime)
	s.effects.Update(deltaTime)
}

func (s *SceneState) handleMouse() {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && s.hud.HandleClick(mouse) {
		return
	}

	x, z, ok := system.GroundPoint(*s.camera, mouse)
	if !ok {
		s.scene.PointerLeave()
		return
	}
	s.scene.PointerMove(x, z)

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		s.scene.PointerDown(x, z)
	case rl.IsMouseButtonPressed(rl.MouseRightButton):
		s.scene.PointerErase(x, z)
	}
}

func (s *SceneState) pause() {
	s.scene.SetPaused(true)
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *SceneState) DrawBackground() {
	s.sky.Draw(s.scene.Clock.Lighting(), s.scene.Now())
}

func (s *SceneState) Draw() {
	s.render.Draw(s.scene.Clock.Lighting())
}

func (s *SceneState) DrawUI() {
	s.hud.Draw()
}

func (s *SceneState) Exit() {}

// Cleanup выгружает модели тайлов.
func (s *SceneState) Cleanup() {
	s.scene.Close()
}
