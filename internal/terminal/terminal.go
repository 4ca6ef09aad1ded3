// Package terminal presents the canvas in a terminal using half-block cells:
// each cell shows two vertically stacked canvas samples as '▀' with the upper
// sample in the foreground and the lower one in the background.
package terminal

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"partifles/internal/game"
)

// Terminals only report key presses, so a key counts as held for this long
// after its last press or auto-repeat.
const keyHold = 150 * time.Millisecond

const halfBlock = '▀'

// Driver owns the screen and the canvas it mirrors.
type Driver struct {
	screen tcell.Screen
	canvas *game.Canvas
	fctx   *game.FrameContext
	img    *image.RGBA

	held [game.KeySpace + 1]time.Time
}

// New wraps an initialised screen.
func New(screen tcell.Screen, cfg game.Config) (*Driver, error) {
	canvas, err := game.NewCanvas(cfg.ViewportWidth, cfg.ViewportHeight)
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Driver{
		screen: screen,
		canvas: canvas,
		fctx:   game.NewFrameContext(canvas),
	}, nil
}

func (d *Driver) Canvas() *game.Canvas { return d.canvas }

// Run creates a terminal screen and drives l at cfg.Hz until ctx is done or
// the user presses ESC, q or Ctrl-C.
func Run(ctx context.Context, cfg game.Config, l game.Listener, clock game.TimeProvider) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	d, err := New(screen, cfg)
	if err != nil {
		return err
	}
	return d.Loop(ctx, cfg, l, clock)
}

// Loop polls events on a separate goroutine and renders on a ticker.
func (d *Driver) Loop(ctx context.Context, cfg game.Config, l game.Listener, clock game.TimeProvider) error {
	if clock == nil {
		clock = game.NewMonotonicTimeProvider()
	}
	events := make(chan tcell.Event, 16)
	go d.pump(ctx, events)

	timer := game.NewFrameTimer(clock, cfg.MaxFrameDelta)
	ticker := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer ticker.Stop()

	l.OnInit(d.fctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.HandleEvent(ev, clock.Now(), l) {
				return nil
			}
		case <-ticker.C:
			d.Frame(l, timer.Tick(), clock.Now())
		}
	}
}

// pump forwards screen events until the screen is finalised or ctx is done.
func (d *Driver) pump(ctx context.Context, events chan<- tcell.Event) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Frame renders one frame and shows it.
func (d *Driver) Frame(l game.Listener, dt float64, now time.Time) {
	for k := game.KeyW; k <= game.KeySpace; k++ {
		d.fctx.SetKey(k, now.Before(d.held[k]))
	}
	d.canvas.Clear()
	l.OnRender(d.fctx, dt)
	d.Present()
}

// HandleEvent applies one terminal event and reports whether to quit.
func (d *Driver) HandleEvent(ev tcell.Event, now time.Time, l game.Listener) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
				return true
			}
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case 'w', 'W':
				d.held[game.KeyW] = now.Add(keyHold)
			case 'a', 'A':
				d.held[game.KeyA] = now.Add(keyHold)
			case 's', 'S':
				d.held[game.KeyS] = now.Add(keyHold)
			case 'd', 'D':
				d.held[game.KeyD] = now.Add(keyHold)
			case ' ':
				d.held[game.KeySpace] = now.Add(keyHold)
			}
		}
	case *tcell.EventMouse:
		mouse, ok := l.(game.MouseListener)
		if !ok {
			break
		}
		cols, rows := d.screen.Size()
		cx, cy := ev.Position()
		if x, y, ok := cellToCanvas(cx, cy, cols, rows, d.canvas.Width(), d.canvas.Height()); ok {
			mouse.OnMouseMove(x, y)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

// Present samples the canvas into the screen, nearest-neighbour.
func (d *Driver) Present() {
	d.img = d.canvas.Snapshot(d.img)
	cols, rows := d.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := d.canvas.Width(), d.canvas.Height()
	for cy := 0; cy < rows; cy++ {
		ty := (2 * cy) * h / (2 * rows)
		by := (2*cy + 1) * h / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			x := cx * w / cols
			style := tcell.StyleDefault.
				Foreground(rgbColor(d.img, x, ty)).
				Background(rgbColor(d.img, x, by))
			d.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	d.screen.Show()
}

func rgbColor(img *image.RGBA, x, y int) tcell.Color {
	o := img.PixOffset(x, y)
	return tcell.NewRGBColor(int32(img.Pix[o]), int32(img.Pix[o+1]), int32(img.Pix[o+2]))
}

// cellToCanvas maps a cell to the canvas point at its centre. Canvas row 0
// is the bottom of the screen.
func cellToCanvas(cx, cy, cols, rows, w, h int) (float64, float64, bool) {
	if cols <= 0 || rows <= 0 || cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return 0, 0, false
	}
	x := (float64(cx) + 0.5) * float64(w) / float64(cols)
	y := float64(h) - (float64(cy)+0.5)*float64(h)/float64(rows)
	return x, y, true
}
