package game

import (
	"fmt"
	"time"
)

// Window defaults. The viewport is the canvas resolution; the window scales it.
const (
	WindowWidth    = 1600
	WindowHeight   = 1200
	ViewportWidth  = 800
	ViewportHeight = 600
	WindowTitle    = "Partifles"
)

// Particles.
const (
	DefaultMaxParticles = 1000
	DefaultFrequency    = 200.0 // particles per second
	ParticleTTL         = 5000 * time.Millisecond
	ParticleRadius      = 50
)

// Emission spread around the base position.
const (
	SpawnSpreadX = 100.0 // x offset in [-SpawnSpreadX, SpawnSpreadX)
	SpawnSpreadY = 5.0   // y offset in [-SpawnSpreadY, SpawnSpreadY)
	SpawnSpeedX  = 20.0  // vx in [-SpawnSpeedX, SpawnSpeedX)
	SpawnLiftMin = 10.0  // vy in [SpawnLiftMin, SpawnLiftMax)
	SpawnLiftMax = 50.0
)

// Frame timing.
const (
	MaxFrameDelta = 0.1 // seconds; longer stalls integrate as this much
	DefaultHz     = 60
)

// Emitter nudge speed for WASD, in canvas pixels per second.
const EmitterNudgeSpeed = 200.0

// Config collects the tunables a driver and the App need.
type Config struct {
	WindowWidth    int
	WindowHeight   int
	ViewportWidth  int
	ViewportHeight int
	Title          string

	MaxParticles int
	Frequency    float64
	TTL          time.Duration
	Radius       int
	Seed         uint64

	MaxFrameDelta float64
	Hz            int
	HUD           bool
}

func DefaultConfig() Config {
	return Config{
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		ViewportWidth:  ViewportWidth,
		ViewportHeight: ViewportHeight,
		Title:          WindowTitle,
		MaxParticles:   DefaultMaxParticles,
		Frequency:      DefaultFrequency,
		TTL:            ParticleTTL,
		Radius:         ParticleRadius,
		Seed:           1,
		MaxFrameDelta:  MaxFrameDelta,
		Hz:             DefaultHz,
	}
}

func (c Config) Validate() error {
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, c.ViewportWidth, c.ViewportHeight)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window: %w: %dx%d", ErrInvalidViewport, c.WindowWidth, c.WindowHeight)
	}
	if c.MaxParticles <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.MaxParticles)
	}
	if !(c.Frequency > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidFrequency, c.Frequency)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("particle ttl must be positive: %v", c.TTL)
	}
	if c.Hz <= 0 {
		return fmt.Errorf("invalid hz: %d", c.Hz)
	}
	return nil
}
