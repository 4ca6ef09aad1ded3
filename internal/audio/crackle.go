// Package audio plays a procedural fire crackle whose loudness follows how
// full the particle pool is.
package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate    = 44100
	ChannelCount  = 2
	bytesPerFrame = 4 * ChannelCount // float32 LE per channel

	masterVolume = 0.35
)

// Crackle streams an endless noise bed with sparse pops.
type Crackle struct {
	ctx *oto.Context
	src *crackleReader

	mu     sync.Mutex
	player oto.Player
	closed bool
}

// NewCrackle opens the audio device and starts playback once it is ready.
// The stream starts silent; call SetIntensity each frame.
func NewCrackle(seed uint64) (*Crackle, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	c := &Crackle{ctx: ctx, src: newCrackleReader(seed)}
	go func() {
		<-ready
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed {
			return
		}
		c.player = ctx.NewPlayer(c.src)
		c.player.SetVolume(masterVolume)
		c.player.Play()
	}()
	return c, nil
}

// SetIntensity sets the crackle gain in [0, 1]. Safe from any goroutine.
func (c *Crackle) SetIntensity(f float64) {
	if c == nil {
		return
	}
	c.src.setGain(f)
}

// OnFrame adapts SetIntensity to the App frame hook.
func (c *Crackle) OnFrame(live, capacity int) {
	if capacity <= 0 {
		return
	}
	c.SetIntensity(float64(live) / float64(capacity))
}

func (c *Crackle) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.player == nil {
		return nil
	}
	return c.player.Close()
}

// crackleReader synthesizes stereo float32 frames on demand.
type crackleReader struct {
	gain atomic.Uint64 // math.Float64bits of target gain

	seed uint64
	lp   float64
	cur  float64 // smoothed gain
	pop  float64 // decaying pop envelope
}

func newCrackleReader(seed uint64) *crackleReader {
	if seed == 0 {
		seed = 1
	}
	return &crackleReader{seed: seed}
}

func (r *crackleReader) setGain(f float64) {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	r.gain.Store(math.Float64bits(f))
}

func (r *crackleReader) Read(p []byte) (int, error) {
	target := math.Float64frombits(r.gain.Load())
	n := len(p) / bytesPerFrame
	for i := 0; i < n; i++ {
		// Ease toward target to avoid zipper noise.
		r.cur += (target - r.cur) * 0.0005

		raw := lcg(&r.seed)
		r.lp = r.lp*0.65 + raw*0.35
		if lcg(&r.seed) > 0.9992 {
			r.pop = 1
		}
		r.pop *= 0.995

		s := (r.lp*0.5 + raw*r.pop*0.8) * r.cur
		putStereoF32(p, i, softSat(s))
	}
	return n * bytesPerFrame, nil
}

// lcg returns a pseudo-random value in [-1, 1).
func lcg(s *uint64) float64 {
	*s = *s*6364136223846793005 + 1442695040888963407
	return float64(int64(*s>>11))/float64(1<<52) - 1
}

func softSat(x float64) float64 { return math.Tanh(x) }

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
