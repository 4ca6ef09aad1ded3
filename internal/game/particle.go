package game

import (
	"fmt"
	"math"
	"time"
)

// Particle is one fixed slot in a ParticlePool. Pos is relative to the
// pool's base position.
type Particle struct {
	Live   bool
	Pos    Vec2
	Vel    Vec2
	Expiry time.Time
}

// ParticlePool is a fixed-capacity emitter. Slots are allocated once and
// reused; emission takes the first dormant slot in index order.
type ParticlePool struct {
	Base Vec2
	P    []Particle

	frequency float64
	period    time.Duration
	ttl       time.Duration
	radius    int
	color     RGB

	lastEmission time.Time
	gateArmed    bool // false until the first gate firing

	clock TimeProvider
	rng   Random
	bus   *EventBus
}

// NewParticlePool allocates capacity dormant slots around base.
// A nil clock or rng falls back to the monotonic clock and a clock-seeded Rand.
func NewParticlePool(capacity int, base Vec2, clock TimeProvider, rng Random) (*ParticlePool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return newParticlePool(capacity, base, clock, rng), nil
}

// newParticlePool assumes capacity > 0.
func newParticlePool(capacity int, base Vec2, clock TimeProvider, rng Random) *ParticlePool {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	ps := &ParticlePool{
		Base:   base,
		P:      make([]Particle, capacity),
		ttl:    ParticleTTL,
		radius: ParticleRadius,
		color:  Palette.Ember,
		clock:  clock,
		rng:    rng,
	}
	ps.setFrequency(DefaultFrequency)
	return ps
}

func (ps *ParticlePool) Capacity() int { return len(ps.P) }

// Live counts the active slots.
func (ps *ParticlePool) Live() int {
	n := 0
	for i := range ps.P {
		if ps.P[i].Live {
			n++
		}
	}
	return n
}

func (ps *ParticlePool) SetPosition(base Vec2) { ps.Base = base }

func (ps *ParticlePool) Frequency() float64 { return ps.frequency }

// SetFrequency sets the emission rate in particles per second.
func (ps *ParticlePool) SetFrequency(f float64) error {
	if !(f > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidFrequency, f)
	}
	ps.setFrequency(f)
	return nil
}

// setFrequency saturates the period at the longest Duration for rates too
// small to represent.
func (ps *ParticlePool) setFrequency(f float64) {
	ps.frequency = f
	p := float64(time.Second) / f
	if p >= math.MaxInt64 {
		ps.period = math.MaxInt64
		return
	}
	ps.period = time.Duration(p)
}

// SetTTL sets the lifespan given to newly emitted particles.
func (ps *ParticlePool) SetTTL(ttl time.Duration) {
	if ttl > 0 {
		ps.ttl = ttl
	}
}

func (ps *ParticlePool) SetRadius(r int) { ps.radius = r }

// SetEventBus routes emission and expiry events to bus. nil disables them.
func (ps *ParticlePool) SetEventBus(bus *EventBus) { ps.bus = bus }

// Clear makes every slot dormant and resets the emission gate.
func (ps *ParticlePool) Clear() {
	for i := range ps.P {
		ps.P[i] = Particle{}
	}
	ps.lastEmission = time.Time{}
	ps.gateArmed = false
}
