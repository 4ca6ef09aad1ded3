package game

import "time"

// Update runs one frame: at most one emission, then for every live slot
// either retire it or integrate it and draw it onto s.
//
// Colour intensity fades linearly with remaining lifetime; the circle's own
// radial blend is applied on top by the canvas.
func (ps *ParticlePool) Update(dt float64, s Surface) {
	now := ps.clock.Now()
	ps.emit(now)

	for i := range ps.P {
		p := &ps.P[i]
		if !p.Live {
			continue
		}

		remaining := p.Expiry.Sub(now)
		if remaining <= 0 {
			p.Live = false
			ps.bus.Emit(Event{Type: EventParticleExpired, X: p.Pos.X, Y: p.Pos.Y, Slot: i})
			continue
		}

		// TTL may have been shortened since emission.
		alpha := clampF(Fade(remaining, ps.ttl), 0, 1)
		p.Pos.AddLocal(p.Vel.Scale(dt))

		if s != nil {
			s.DrawGradientCircle(
				int(p.Pos.X+ps.Base.X),
				int(p.Pos.Y+ps.Base.Y),
				ps.radius,
				ps.color.Scale(alpha),
			)
		}
	}
}

// Fade maps remaining lifetime to (0, 1].
func Fade(remaining, ttl time.Duration) float64 {
	return float64(remaining) / float64(ttl)
}
