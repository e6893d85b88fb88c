// pkg/termrender/input.go
package termrender

import (
	"github.com/gdamore/tcell/v2"

	"go-hex-ripple/pkg/hexmap"
)

var tileRunes = map[rune]hexmap.TileType{
	'1': hexmap.TileA,
	'2': hexmap.TileB,
	'3': hexmap.TileC,
	'4': hexmap.TileD,
	'0': hexmap.TileEmpty,
}

// HandleEvent применяет событие tcell к сцене. Возвращает true, если пора выходить.
func (r *Renderer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		r.screen.Sync()
		r.Resize()
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventMouse:
		r.handleMouse(ev)
	}
	return false
}

func (r *Renderer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ch := ev.Rune(); ch {
	case 'q':
		return true
	case 'p', ' ':
		r.scene.TogglePause()
	case 'c':
		r.scene.ClearTiles()
	case '[':
		r.scene.Clock.SetTime(r.scene.Clock.Time() - 1.0/24)
	case ']':
		r.scene.Clock.SetTime(r.scene.Clock.Time() + 1.0/24)
	default:
		if t, ok := tileRunes[ch]; ok {
			_ = r.scene.SelectTile(t)
		}
	}
	return false
}

func (r *Renderer) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	h, onGrid := r.HexAt(col, row)
	if onGrid {
		x, z := h.ToWorld(r.layout.HexSize)
		r.scene.PointerMove(x, z)
	} else {
		r.scene.PointerLeave()
	}

	// только нажатия; удержание при движении мыши не повторяет клик
	buttons := ev.Buttons() &^ r.held
	r.held = ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		if t, ok := r.PaletteAt(col, row); ok {
			_ = r.scene.SelectTile(t)
			return
		}
		if onGrid {
			x, z := h.ToWorld(r.layout.HexSize)
			r.scene.PointerDown(x, z)
		}
	case buttons&tcell.Button2 != 0 && onGrid:
		x, z := h.ToWorld(r.layout.HexSize)
		r.scene.PointerErase(x, z)
	}
}
