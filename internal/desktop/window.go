//go:build !ebiten

package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"partifles/internal/game"
)

func initWindow(cfg game.Config) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False) // shown after OnInit

	window, err := glfw.CreateWindow(cfg.WindowWidth, cfg.WindowHeight, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	// Centre on the primary monitor.
	if mon := glfw.GetPrimaryMonitor(); mon != nil {
		if mode := mon.GetVideoMode(); mode != nil {
			w, h := window.GetSize()
			window.SetPos((mode.Width-w)/2, (mode.Height-h)/2)
		}
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
