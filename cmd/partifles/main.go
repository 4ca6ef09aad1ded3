package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"partifles/internal/audio"
	"partifles/internal/desktop"
	"partifles/internal/game"
	"partifles/internal/terminal"
)

type options struct {
	driver  string
	frames  int
	out     string
	audio   bool
	verbose bool

	sprite      string
	spriteGrid  string
	spriteFrame string
	spriteCount int
	spriteFPS   float64
}

func main() {
	cfg := game.DefaultConfig()
	var opt options

	flag.StringVar(&opt.driver, "driver", "window", "Frame driver: window, term or headless.")
	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "Window width in screen pixels.")
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "Window height in screen pixels.")
	flag.IntVar(&cfg.ViewportWidth, "viewport-w", cfg.ViewportWidth, "Canvas width in pixels.")
	flag.IntVar(&cfg.ViewportHeight, "viewport-h", cfg.ViewportHeight, "Canvas height in pixels.")
	flag.IntVar(&cfg.MaxParticles, "particles", cfg.MaxParticles, "Particle pool capacity.")
	flag.Float64Var(&cfg.Frequency, "freq", cfg.Frequency, "Emission rate in particles per second.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate for the term and headless drivers.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Show the live particle count.")
	flag.IntVar(&opt.frames, "frames", 300, "Frames to render in headless mode (0 = until interrupted).")
	flag.StringVar(&opt.out, "out", "", "PNG path for the last headless frame.")
	flag.BoolVar(&opt.audio, "audio", true, "Play the ambient crackle (window driver only).")
	flag.BoolVar(&opt.verbose, "v", false, "Debug logging.")
	flag.StringVar(&opt.sprite, "sprite", "", "Sprite sheet image (png, bmp or webp) drawn at the emitter.")
	flag.StringVar(&opt.spriteGrid, "sprite-grid", "1x1", "Sprite sheet grid as COLSxROWS.")
	flag.StringVar(&opt.spriteFrame, "sprite-frame", "", "Sprite frame size as WxH (default: whole image).")
	flag.IntVar(&opt.spriteCount, "sprite-count", 0, "Frames in the sheet (0 = every cell).")
	flag.Float64Var(&opt.spriteFPS, "sprite-fps", 12, "Sprite animation rate.")
	flag.Parse()

	level := slog.LevelInfo
	if opt.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	game.SetLogger(logger)

	// Seed from environment or clock.
	cfg.Seed = uint64(time.Now().UnixNano())
	if s := os.Getenv("PARTIFLES_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = v
		} else {
			logger.Warn("ignoring PARTIFLES_SEED", "value", s, "err", err)
		}
	}

	if err := run(cfg, opt, logger); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg game.Config, opt options, logger *slog.Logger) error {
	var clock game.TimeProvider = game.NewMonotonicTimeProvider()
	var sim *game.MockTimeProvider
	if opt.driver == "headless" {
		sim = game.NewMockTimeProvider(time.Unix(0, 0))
		clock = sim
	}

	app, err := game.NewApp(cfg, clock, game.NewRand(cfg.Seed))
	if err != nil {
		return err
	}
	if opt.sprite != "" {
		sheet, err := loadSprite(opt)
		if err != nil {
			return err
		}
		app.SetSprite(sheet, opt.spriteFPS)
		logger.Info("sprite loaded", "path", opt.sprite, "frames", sheet.NumFrames())
	}

	logger.Info("driver selected", "driver", opt.driver, "seed", cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch opt.driver {
	case "window":
		if opt.audio {
			crackle, err := audio.NewCrackle(cfg.Seed)
			if err != nil {
				logger.Warn("audio init failed, continuing without sound", "err", err)
			} else {
				defer crackle.Close()
				app.OnFrame = crackle.OnFrame
			}
		}
		return desktop.Run(ctx, cfg, app, clock)
	case "term":
		return terminal.Run(ctx, cfg, app, clock)
	case "headless":
		_, err := game.RunHeadless(ctx, cfg, game.HeadlessConfig{Frames: opt.frames, Out: opt.out}, sim, app)
		if err == nil {
			st := app.Stats()
			logger.Info("headless run complete",
				"emitted", st.Emitted, "expired", st.Expired, "live", app.Pool.Live())
		}
		return err
	}
	return fmt.Errorf("unknown driver %q", opt.driver)
}

func loadSprite(opt options) (*game.SpriteSheet, error) {
	fsys := os.DirFS(filepath.Dir(opt.sprite))
	name := filepath.Base(opt.sprite)
	if opt.spriteFrame == "" {
		return game.LoadSprite(fsys, name)
	}
	cols, rows, err := parseDims(opt.spriteGrid)
	if err != nil {
		return nil, fmt.Errorf("sprite-grid: %w", err)
	}
	fw, fh, err := parseDims(opt.spriteFrame)
	if err != nil {
		return nil, fmt.Errorf("sprite-frame: %w", err)
	}
	return game.LoadSpriteSheet(fsys, name, game.SpriteGrid{
		NumFrames: opt.spriteCount,
		Cols:      cols,
		Rows:      rows,
		FrameW:    fw,
		FrameH:    fh,
	})
}

// parseDims parses "AxB".
func parseDims(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	w, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q: %w", s, err)
	}
	h, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("want WxH, got %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("want positive WxH, got %q", s)
	}
	return w, h, nil
}
