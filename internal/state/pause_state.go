// internal/state/pause_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сцену и рисует её под затемнением.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *SceneState
}

func NewPauseState(sm *StateMachine, prev *SceneState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && s.previousState.hud.PauseButton.Contains(rl.GetMousePosition()) {
		unpause = true
	}
	// циферблат работает и на паузе
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && s.previousState.hud.Dial.Contains(rl.GetMousePosition()) {
		s.previousState.scene.Clock.SetTime(s.previousState.hud.Dial.FractionAt(rl.GetMousePosition()))
	}
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) DrawBackground() {
	s.previousState.DrawBackground()
}

func (s *PauseState) Draw() {
	s.previousState.Draw()
}

// DrawUI рисует UI для состояния паузы
func (s *PauseState) DrawUI() {
	s.previousState.DrawUI()

	rl.DrawRectangle(0, 0, int32(config.ScreenWidth), int32(config.ScreenHeight), rl.NewColor(0, 0, 0, 110))
	const text = "PAUSED"
	const fontSize = 40
	size := rl.MeasureTextEx(s.previousState.font, text, fontSize, 1)
	pos := rl.NewVector2((float32(config.ScreenWidth)-size.X)/2, float32(config.ScreenHeight)/2-20)
	rl.DrawTextEx(s.previousState.font, text, pos, fontSize, 1, rl.RayWhite)
}

func (s *PauseState) Exit() {}

func (s *PauseState) Cleanup() {
	s.previousState.Cleanup()
}
