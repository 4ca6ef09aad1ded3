package game

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"
)

// HeadlessConfig controls the no-window driver.
type HeadlessConfig struct {
	Frames int    // frames to render (0 = until ctx is done)
	Out    string // PNG path for the last frame; empty skips writing
}

// RunHeadless drives l without a window against a simulated clock, advancing
// it by one frame period per frame. It returns the canvas after the last frame.
func RunHeadless(ctx context.Context, cfg Config, hc HeadlessConfig, clock *MockTimeProvider, l Listener) (*Canvas, error) {
	if cfg.Hz <= 0 {
		return nil, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	canvas, err := NewCanvas(cfg.ViewportWidth, cfg.ViewportHeight)
	if err != nil {
		return nil, err
	}
	fctx := NewFrameContext(canvas)
	period := time.Second / time.Duration(cfg.Hz)
	timer := NewFrameTimer(clock, cfg.MaxFrameDelta)

	l.OnInit(fctx)

	for frame := 0; hc.Frames <= 0 || frame < hc.Frames; frame++ {
		select {
		case <-ctx.Done():
			return canvas, ctx.Err()
		default:
		}
		canvas.Clear()
		l.OnRender(fctx, timer.Tick())
		clock.Advance(period)
	}

	if hc.Out != "" {
		if err := WritePNG(canvas, hc.Out); err != nil {
			return canvas, err
		}
		Logger().Info("frame written", "path", hc.Out, "frames", hc.Frames)
	}
	return canvas, nil
}

// WritePNG encodes the canvas top-down to path.
func WritePNG(c *Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	if err := png.Encode(f, c.Snapshot(nil)); err != nil {
		f.Close()
		return fmt.Errorf("write png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}
