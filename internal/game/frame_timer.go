package game

import "time"

// FrameTimer turns successive clock readings into per-frame deltas.
// The first Tick returns 0; later ones are clamped to maxDelta.
type FrameTimer struct {
	clock    TimeProvider
	prev     time.Time
	started  bool
	maxDelta float64
}

func NewFrameTimer(clock TimeProvider, maxDelta float64) *FrameTimer {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &FrameTimer{clock: clock, maxDelta: maxDelta}
}

func (ft *FrameTimer) Tick() float64 {
	now := ft.clock.Now()
	if !ft.started {
		ft.started = true
		ft.prev = now
		return 0
	}
	dt := now.Sub(ft.prev).Seconds()
	ft.prev = now
	if dt < 0 {
		dt = 0
	}
	if ft.maxDelta > 0 && dt > ft.maxDelta {
		dt = ft.maxDelta
	}
	return dt
}
