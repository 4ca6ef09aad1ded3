//go:build ebiten

package desktop

import (
	"context"
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"partifles/internal/game"
)

var ebitenKeys = [...]struct {
	ebiten ebiten.Key
	key    game.Key
}{
	{ebiten.KeyW, game.KeyW},
	{ebiten.KeyA, game.KeyA},
	{ebiten.KeyS, game.KeyS},
	{ebiten.KeyD, game.KeyD},
	{ebiten.KeySpace, game.KeySpace},
}

// Run opens an Ebiten window and drives l until it is closed, ESC is pressed
// or ctx is done.
func Run(ctx context.Context, cfg game.Config, l game.Listener, clock game.TimeProvider) error {
	canvas, err := game.NewCanvas(cfg.ViewportWidth, cfg.ViewportHeight)
	if err != nil {
		return err
	}
	g := &hostGame{
		ctx:    ctx,
		cfg:    cfg,
		canvas: canvas,
		fctx:   game.NewFrameContext(canvas),
		l:      l,
		timer:  game.NewFrameTimer(clock, cfg.MaxFrameDelta),
	}
	g.mouse, _ = l.(game.MouseListener)

	l.OnInit(g.fctx)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Hz)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return ctx.Err()
	}
	return err
}

type hostGame struct {
	ctx    context.Context
	cfg    game.Config
	canvas *game.Canvas
	fctx   *game.FrameContext
	l      game.Listener
	mouse  game.MouseListener
	timer  *game.FrameTimer

	img   *image.RGBA
	fbImg *ebiten.Image

	prevCX, prevCY int
}

func (g *hostGame) Update() error {
	if !keepRunning(g.ctx, ebiten.IsKeyPressed(ebiten.KeyEscape)) {
		return ebiten.Termination
	}
	for _, m := range ebitenKeys {
		g.fctx.SetKey(m.key, ebiten.IsKeyPressed(m.ebiten))
	}
	if g.mouse != nil {
		// Layout pins the logical screen to the canvas size.
		cx, cy := ebiten.CursorPosition()
		if cx != g.prevCX || cy != g.prevCY {
			g.prevCX, g.prevCY = cx, cy
			w, h := g.canvas.Width(), g.canvas.Height()
			if x, y, ok := CursorCanvasPos(float64(cx), float64(cy), w, h, w, h); ok {
				g.mouse.OnMouseMove(x, y)
			}
		}
	}

	g.canvas.Clear()
	g.l.OnRender(g.fctx, g.timer.Tick())
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.canvas.Width(), g.canvas.Height())
	}
	g.img = g.canvas.Snapshot(g.img)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.Width(), g.canvas.Height()
}
