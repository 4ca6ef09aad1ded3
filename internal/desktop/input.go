//go:build !ebiten

package desktop

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"partifles/internal/game"
)

var keyMap = [...]struct {
	glfw glfw.Key
	key  game.Key
}{
	{glfw.KeyW, game.KeyW},
	{glfw.KeyA, game.KeyA},
	{glfw.KeyS, game.KeyS},
	{glfw.KeyD, game.KeyD},
	{glfw.KeySpace, game.KeySpace},
}

type Input struct {
	prevCursorX float64
	prevCursorY float64
	seenCursor  bool
}

func NewInput() *Input {
	return &Input{}
}

// PollKeys copies the tracked key states into ks.
func (in *Input) PollKeys(window *glfw.Window, ks *game.KeyState) {
	for _, m := range keyMap {
		ks.SetKey(m.key, window.GetKey(m.glfw) == glfw.Press)
	}
}

// CursorMoved reports the cursor in canvas coordinates when it moved since
// the last call.
func (in *Input) CursorMoved(window *glfw.Window, canvasW, canvasH int) (float64, float64, bool) {
	cx, cy := window.GetCursorPos()
	moved := !in.seenCursor || math.Hypot(cx-in.prevCursorX, cy-in.prevCursorY) > 0.5
	in.prevCursorX, in.prevCursorY = cx, cy
	in.seenCursor = true
	if !moved {
		return 0, 0, false
	}
	winW, winH := window.GetSize()
	x, y, ok := CursorCanvasPos(cx, cy, winW, winH, canvasW, canvasH)
	return x, y, ok
}
