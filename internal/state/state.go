// internal/state/state.go
package state

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw() // вызывается внутри BeginMode3D
	Exit()
}

// Необязательные возможности состояний, которые проверяет главный цикл.
type (
	BackgroundDrawer interface{ DrawBackground() }
	UIDrawer         interface{ DrawUI() }
	Cleaner          interface{ Cleanup() }
)

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

// DrawBackground рисует фон текущего состояния, если он есть.
func (sm *StateMachine) DrawBackground() {
	if bg, ok := sm.current.(BackgroundDrawer); ok {
		bg.DrawBackground()
	}
}

// DrawUI рисует 2D-интерфейс текущего состояния, если он есть.
func (sm *StateMachine) DrawUI() {
	if u, ok := sm.current.(UIDrawer); ok {
		u.DrawUI()
	}
}

// Cleanup освобождает ресурсы текущего состояния.
func (sm *StateMachine) Cleanup() {
	if c, ok := sm.current.(Cleaner); ok {
		c.Cleanup()
	}
}
