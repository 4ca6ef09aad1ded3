//go:build !ebiten

package desktop

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"partifles/internal/game"
)

// Run opens a window and drives l until the window is closed, ESC is
// released or ctx is done. Each frame clears the canvas, calls OnRender, then
// uploads the canvas and swaps. Setup failures are returned; nothing after
// setup fails.
func Run(ctx context.Context, cfg game.Config, l game.Listener, clock game.TimeProvider) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	canvas, err := game.NewCanvas(cfg.ViewportWidth, cfg.ViewportHeight)
	if err != nil {
		return err
	}

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	game.Logger().Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0.5, 0.5, 1.0, 0.0)

	rend, err := NewRenderer(canvas.Width(), canvas.Height())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Release {
			w.SetShouldClose(true)
		}
	})

	fctx := game.NewFrameContext(canvas)
	input := NewInput()
	timer := game.NewFrameTimer(clock, cfg.MaxFrameDelta)
	mouse, _ := l.(game.MouseListener)

	l.OnInit(fctx)
	window.Show()

	for keepRunning(ctx, window.ShouldClose()) {
		glfw.PollEvents()

		input.PollKeys(window, &fctx.KeyState)
		if mouse != nil {
			if x, y, ok := input.CursorMoved(window, canvas.Width(), canvas.Height()); ok {
				mouse.OnMouseMove(x, y)
			}
		}

		canvas.Clear()
		l.OnRender(fctx, timer.Tick())

		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			rend.Present(canvas, fbW, fbH)
		}
		window.SwapBuffers()
	}
	return ctx.Err()
}
