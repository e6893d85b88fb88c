// internal/state/menu_state.go
package state

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-hex-ripple/internal/ui"
)

// MenuState — стартовый экран со справкой по управлению.
type MenuState struct {
	sm          *StateMachine
	font        rl.Font
	start       func() State
	startButton *ui.Button
	exitButton  *ui.Button
	quit        bool
}

var controls = []string{
	"Left click   place tile and send a ripple",
	"Right click  erase tile",
	"1-4 / 0      pick tile / eraser",
	"Q / E        orbit camera, wheel tilts",
	"P / Space    pause, C clears tiles",
}

// NewMenuState создаёт меню. start строит состояние сцены при нажатии "Start".
func NewMenuState(sm *StateMachine, font rl.Font, start func() State) *MenuState {
	const btnWidth, btnHeight, spacing = 220, 50, 20
	x := (float32(rl.GetScreenWidth()) - btnWidth) / 2
	y := float32(rl.GetScreenHeight())/2 + 40

	return &MenuState{
		sm:          sm,
		font:        font,
		start:       start,
		startButton: ui.NewButton(rl.NewRectangle(x, y, btnWidth, btnHeight), "Start"),
		exitButton:  ui.NewButton(rl.NewRectangle(x, y+btnHeight+spacing, btnWidth, btnHeight), "Exit"),
	}
}

func (s *MenuState) Enter() {}

func (s *MenuState) Update(deltaTime float64) {
	mouse := rl.GetMousePosition()
	if s.startButton.IsClicked(mouse) || rl.IsKeyPressed(rl.KeyEnter) {
		s.sm.SetState(s.start())
		return
	}
	if s.exitButton.IsClicked(mouse) {
		s.quit = true
	}
}

// ShouldQuit — пользователь нажал "Exit".
func (s *MenuState) ShouldQuit() bool { return s.quit }

func (s *MenuState) Draw() {}

func (s *MenuState) DrawUI() {
	rl.ClearBackground(rl.NewColor(10, 10, 20, 255))
	const title = "Hex Ripple"
	const titleSize = 60
	w := rl.MeasureTextEx(s.font, title, titleSize, 1).X
	rl.DrawTextEx(s.font, title, rl.NewVector2((float32(rl.GetScreenWidth())-w)/2, 90), titleSize, 1, rl.RayWhite)

	for i, line := range controls {
		rl.DrawTextEx(s.font, line, rl.NewVector2(float32(rl.GetScreenWidth())/2-200, 190+float32(i)*26), 20, 1, rl.LightGray)
	}

	mouse := rl.GetMousePosition()
	s.startButton.Draw(s.font, mouse)
	s.exitButton.Draw(s.font, mouse)
}

func (s *MenuState) Exit() {}
