package game

import "time"

// emit runs one emission cycle if the gate period has elapsed since the last
// one. A long stall still yields a single particle. It returns the slot used,
// or -1.
func (ps *ParticlePool) emit(now time.Time) int {
	if ps.gateArmed && now.Sub(ps.lastEmission) <= ps.period {
		return -1
	}
	ps.lastEmission = now
	ps.gateArmed = true

	for i := range ps.P {
		p := &ps.P[i]
		if p.Live {
			continue
		}
		p.Pos = Vec2{
			X: RangeF(ps.rng, -SpawnSpreadX, SpawnSpreadX),
			Y: RangeF(ps.rng, -SpawnSpreadY, SpawnSpreadY),
		}
		p.Vel = Vec2{
			X: RangeF(ps.rng, -SpawnSpeedX, SpawnSpeedX),
			Y: RangeF(ps.rng, SpawnLiftMin, SpawnLiftMax),
		}
		p.Expiry = now.Add(ps.ttl)
		p.Live = true

		ps.bus.Emit(Event{Type: EventParticleEmitted, X: p.Pos.X, Y: p.Pos.Y, Slot: i})
		return i
	}

	ps.bus.Emit(Event{Type: EventPoolSaturated, Slot: -1})
	return -1
}
