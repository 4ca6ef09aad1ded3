package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func samples(buf []byte) []float32 {
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestCrackleReaderSilentAtZeroGain(t *testing.T) {
	r := newCrackleReader(1)
	buf := make([]byte, 1024*bytesPerFrame)
	n, err := r.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for i, s := range samples(buf) {
		if s != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestCrackleReaderWholeFrames(t *testing.T) {
	r := newCrackleReader(1)
	buf := make([]byte, 3*bytesPerFrame+5)
	n, _ := r.Read(buf)
	if n != 3*bytesPerFrame {
		t.Errorf("Read = %d, want %d", n, 3*bytesPerFrame)
	}
}

func TestCrackleReaderFollowsGain(t *testing.T) {
	r := newCrackleReader(7)
	r.setGain(5) // clamped to 1
	buf := make([]byte, 44100*bytesPerFrame)
	r.Read(buf)

	s := samples(buf)
	var peak float64
	for i := 0; i < len(s); i += 2 {
		if s[i] != s[i+1] {
			t.Fatalf("frame %d: channels differ", i/2)
		}
		peak = max(peak, math.Abs(float64(s[i])))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("peak = %v, want in (0, 1]", peak)
	}
	if math.Float64frombits(r.gain.Load()) != 1 {
		t.Errorf("gain not clamped to 1")
	}
}

func TestCrackleOnFrameIgnoresEmptyPool(t *testing.T) {
	c := &Crackle{src: newCrackleReader(1)}
	c.OnFrame(5, 0)
	if g := math.Float64frombits(c.src.gain.Load()); g != 0 {
		t.Errorf("gain = %v after capacity 0", g)
	}
	c.OnFrame(1, 4)
	if g := math.Float64frombits(c.src.gain.Load()); g != 0.25 {
		t.Errorf("gain = %v, want 0.25", g)
	}

	var nilCrackle *Crackle
	nilCrackle.SetIntensity(1)
	if err := nilCrackle.Close(); err != nil {
		t.Errorf("nil Close = %v", err)
	}
}
