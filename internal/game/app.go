package game

import (
	"fmt"
	"log/slog"
)

// Stats counts pool events since start.
type Stats struct {
	Emitted   uint64
	Expired   uint64
	Saturated uint64
}

// App is the Listener that owns the particle pool and the optional sprite
// and HUD overlays.
type App struct {
	cfg   Config
	clock TimeProvider
	rng   Random

	Pool *ParticlePool
	Bus  *EventBus

	stats Stats
	hud   *HUD

	sprite     *SpriteSheet
	spriteFPS  float64
	spriteTime float64

	// OnFrame, when set, is called after each rendered frame.
	OnFrame func(live, capacity int)
}

func NewApp(cfg Config, clock TimeProvider, rng Random) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	a := &App{
		cfg:   cfg,
		clock: clock,
		rng:   rng,
		Bus:   NewEventBus(),
	}
	if cfg.HUD {
		a.hud = NewHUD(Palette.HUD)
	}
	a.Bus.Subscribe(EventParticleEmitted, func(Event) { a.stats.Emitted++ })
	a.Bus.Subscribe(EventParticleExpired, func(Event) { a.stats.Expired++ })
	a.Bus.Subscribe(EventPoolSaturated, func(Event) { a.stats.Saturated++ })
	return a, nil
}

// SetSprite animates sheet at the emitter base at fps frames per second.
func (a *App) SetSprite(sheet *SpriteSheet, fps float64) {
	a.sprite = sheet
	a.spriteFPS = fps
	a.spriteTime = 0
}

func (a *App) Stats() Stats { return a.stats }

func (a *App) OnInit(ctx Context) {
	base := V2(float64(ctx.Width())/2, float64(ctx.Height())/4)
	// Capacity and frequency were validated in NewApp.
	pool := newParticlePool(a.cfg.MaxParticles, base, a.clock, a.rng)
	pool.setFrequency(a.cfg.Frequency)
	pool.SetTTL(a.cfg.TTL)
	pool.SetRadius(a.cfg.Radius)
	pool.SetEventBus(a.Bus)
	a.Pool = pool

	Logger().Info("startup complete",
		slog.Int("width", ctx.Width()),
		slog.Int("height", ctx.Height()),
		slog.Int("particles", pool.Capacity()),
		slog.Float64("frequency", pool.Frequency()),
	)
}

func (a *App) OnRender(ctx Context, dt float64) {
	if a.Pool == nil {
		return
	}
	a.steer(ctx, dt)

	if ctx.KeyDown(KeySpace) {
		ctx.DrawGradient()
	}

	a.Pool.Update(dt, ctx)

	if a.sprite != nil && a.sprite.NumFrames() > 0 {
		a.spriteTime += dt
		frame := int(a.spriteTime*a.spriteFPS) % a.sprite.NumFrames()
		b := a.Pool.Base
		a.sprite.DrawFrame(ctx, frame, int(b.X)-a.sprite.FrameW/2, int(b.Y))
	}

	live := a.Pool.Live()
	if a.hud != nil {
		a.hud.DrawText(ctx, 8, 8, fmt.Sprintf("particles %d/%d", live, a.Pool.Capacity()))
	}
	if a.OnFrame != nil {
		a.OnFrame(live, a.Pool.Capacity())
	}
}

// OnMouseMove moves the emitter base to the cursor.
func (a *App) OnMouseMove(x, y float64) {
	if a.Pool == nil {
		return
	}
	a.Pool.SetPosition(V2(x, y))
}

// steer nudges the emitter with WASD. W moves up the screen, which is +y on the canvas.
func (a *App) steer(ctx Context, dt float64) {
	var d Vec2
	if ctx.KeyDown(KeyW) {
		d.Y++
	}
	if ctx.KeyDown(KeyS) {
		d.Y--
	}
	if ctx.KeyDown(KeyA) {
		d.X--
	}
	if ctx.KeyDown(KeyD) {
		d.X++
	}
	if d == (Vec2{}) {
		return
	}
	d.NormalizeLocal().ScaleLocal(EmitterNudgeSpeed * dt)
	b := a.Pool.Base.Add(d)
	b.X = clampF(b.X, 0, float64(ctx.Width()-1))
	b.Y = clampF(b.Y, 0, float64(ctx.Height()-1))
	a.Pool.SetPosition(b)
}
