package game

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

var (
	red   = RGB{R: 255}
	white = RGB{R: 255, G: 255, B: 255}
	gray  = RGB{R: 100, G: 100, B: 100}
)

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := NewCanvas(w, h)
	if err != nil {
		t.Fatalf("NewCanvas(%d, %d): %v", w, h, err)
	}
	return c
}

// painted returns the set of pixels that are not black.
func painted(c *Canvas) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.At(x, y) != (RGB{}) {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestNewCanvasRejectsEmptyViewport(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := NewCanvas(dims[0], dims[1]); !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("NewCanvas(%d, %d) err = %v, want ErrInvalidViewport", dims[0], dims[1], err)
		}
	}
}

func TestCanvasBufferLayout(t *testing.T) {
	c := newTestCanvas(t, 4, 3)
	if len(c.Pix) != 4*3*3 {
		t.Fatalf("len(Pix) = %d, want 36", len(c.Pix))
	}
	c.FillRect(2, 1, 1, 1, RGB{R: 10, G: 20, B: 30})
	i := 3 * (1*4 + 2)
	if c.Pix[i] != 10 || c.Pix[i+1] != 20 || c.Pix[i+2] != 30 {
		t.Errorf("pixel (2,1) at byte %d = %v, want [10 20 30]", i, c.Pix[i:i+3])
	}
}

func TestCanvasClear(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.FillRect(0, 0, 10, 10, white)
	c.Clear()
	if !bytes.Equal(c.Pix, make([]byte, len(c.Pix))) {
		t.Errorf("Clear left non-zero bytes")
	}
}

func TestDrawGradientCircleScenario(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	c.DrawGradientCircle(50, 50, 10, red)

	if got := c.At(50, 50); got != red {
		t.Errorf("centre = %v, want %v", got, red)
	}
	if got := c.At(50, 61); got != (RGB{}) {
		t.Errorf("(50,61) outside radius = %v, want black", got)
	}
	// Rows run over [y-r, y+r), so the top row stays untouched.
	if got := c.At(50, 60); got != (RGB{}) {
		t.Errorf("(50,60) = %v, want black", got)
	}
	if got := c.At(50, 40); got.R != 0 {
		// dy == r gives a zero-width chord.
		t.Errorf("(50,40) = %v, want black", got)
	}
}

func TestDrawGradientCircleBlendsWithExisting(t *testing.T) {
	c := newTestCanvas(t, 200, 200)
	c.FillRect(0, 0, 200, 200, gray)
	c.DrawGradientCircle(100, 100, 50, white)

	if got := c.At(100, 100); got != white {
		t.Errorf("centre = %v, want exact colour %v", got, white)
	}

	// dist = 0.98: alpha 0.02, 0.02*255 + 0.98*100 = 103.1
	edge := c.At(149, 100)
	if edge.R < 100 || edge.R > 105 || edge.R != edge.G || edge.G != edge.B {
		t.Errorf("edge pixel = %v, want close to %v", edge, gray)
	}

	// dist = 0.5: 0.5*255 + 0.5*100 = 177.5, truncated.
	if got := c.At(125, 100); got.R != 177 {
		t.Errorf("half-radius pixel = %v, want R=177", got)
	}

	if got := c.At(100, 160); got != gray {
		t.Errorf("outside pixel = %v, want untouched %v", got, gray)
	}
}

func TestDrawGradientCircleClipsSilently(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	for _, p := range [][2]int{{-20, -20}, {1000, 1000}, {150, 50}, {50, 150}} {
		c.DrawGradientCircle(p[0], p[1], 10, red)
	}
	if len(painted(c)) != 0 {
		t.Errorf("fully off-canvas circles painted %d pixels", len(painted(c)))
	}

	// Straddling the corner only writes in-bounds pixels.
	c.DrawGradientCircle(0, 0, 10, red)
	for p := range painted(c) {
		if p[0] >= 10 || p[1] >= 10 {
			t.Errorf("corner circle painted %v", p)
		}
	}
	if c.At(0, 0) != red {
		t.Errorf("corner centre = %v, want %v", c.At(0, 0), red)
	}
}

func TestFillRectFullyOutsideMutatesNothing(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	c.FillRect(0, 200, 10, 10, red)
	c.FillRect(0, -50, 10, 10, red)
	c.FillRect(10, 100, 100, 3, red)
	if !bytes.Equal(c.Pix, make([]byte, len(c.Pix))) {
		t.Errorf("out-of-bounds FillRect mutated the buffer")
	}
}

func TestFillRectPartialOverlap(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       int
	}{
		{"top", 10, -5, 5, 10, 25},
		{"bottom", 10, 95, 5, 10, 25},
		{"inside", 20, 20, 4, 3, 12},
		{"empty", 20, 20, 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 100, 100)
			c.FillRect(tt.x, tt.y, tt.w, tt.h, red)
			got := painted(c)
			if len(got) != tt.want {
				t.Fatalf("painted %d pixels, want %d", len(got), tt.want)
			}
			for p := range got {
				if p[0] < tt.x || p[0] >= tt.x+tt.w || p[1] < tt.y || p[1] >= tt.y+tt.h {
					t.Errorf("painted %v outside the rect", p)
				}
			}
		})
	}
}

func TestFillRectWrapsByLinearIndex(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	c.FillRect(98, 0, 4, 1, red)
	want := map[[2]int]bool{{98, 0}: true, {99, 0}: true, {0, 1}: true, {1, 1}: true}
	got := painted(c)
	if len(got) != len(want) {
		t.Fatalf("painted %v, want %v", got, want)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("missing %v", p)
		}
	}
}

func TestDrawLine(t *testing.T) {
	type px = [2]int
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		width          int
		want           []px
		absent         []px
	}{
		{
			name: "horizontal", x1: 10, y1: 10, x2: 20, y2: 10,
			want:   []px{{10, 10}, {15, 10}, {19, 10}},
			absent: []px{{20, 10}, {9, 10}, {15, 11}},
		},
		{
			name: "horizontal reversed", x1: 20, y1: 10, x2: 10, y2: 10,
			want:   []px{{10, 10}, {19, 10}},
			absent: []px{{20, 10}},
		},
		{
			name: "vertical", x1: 5, y1: 5, x2: 5, y2: 15,
			want:   []px{{5, 5}, {5, 10}, {5, 14}},
			absent: []px{{5, 15}, {4, 10}, {6, 10}},
		},
		{
			name: "diagonal", x1: 0, y1: 0, x2: 10, y2: 10,
			want:   []px{{0, 0}, {5, 5}, {9, 9}},
			absent: []px{{1, 0}, {10, 10}},
		},
		{
			name: "steep", x1: 0, y1: 0, x2: 5, y2: 10,
			want:   []px{{0, 0}, {0, 1}, {1, 2}, {2, 5}, {4, 9}},
			absent: []px{{1, 1}, {5, 10}},
		},
		{
			name: "thick", x1: 10, y1: 10, x2: 13, y2: 10, width: 2,
			want:   []px{{9, 10}, {10, 10}, {13, 10}},
			absent: []px{{8, 10}, {14, 10}, {10, 11}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 100, 100)
			c.DrawLine(tt.x1, tt.y1, tt.x2, tt.y2, tt.width, red)
			for _, p := range tt.want {
				if c.At(p[0], p[1]) != red {
					t.Errorf("pixel %v not painted", p)
				}
			}
			for _, p := range tt.absent {
				if c.At(p[0], p[1]) != (RGB{}) {
					t.Errorf("pixel %v painted", p)
				}
			}
		})
	}
}

func TestDrawLineDegenerateAndOffCanvas(t *testing.T) {
	c := newTestCanvas(t, 50, 50)
	c.DrawLine(5, 5, 5, 5, 3, red)
	if n := len(painted(c)); n != 0 {
		t.Errorf("zero-length line painted %d pixels", n)
	}
	// Must not panic when running past either end of the buffer.
	c.DrawLine(-100, -100, 200, 200, 5, red)
	c.DrawLine(10, -40, 12, 400, 9, red)
	if c.At(25, 25) != red {
		t.Errorf("line through the centre did not paint (25,25)")
	}
}

func TestDrawColumn(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.DrawColumn(3, 2, []byte{1, 2, 3, 4, 5, 6, 7})

	if got := c.At(3, 2); got != (RGB{R: 1, G: 2, B: 3}) {
		t.Errorf("(3,2) = %v", got)
	}
	if got := c.At(3, 3); got != (RGB{R: 4, G: 5, B: 6}) {
		t.Errorf("(3,3) = %v", got)
	}
	if got := c.At(3, 4); got != (RGB{}) {
		t.Errorf("partial triplet was written: %v", got)
	}

	// Runs off the top of the buffer without panicking.
	c.DrawColumn(0, 8, bytes.Repeat([]byte{9, 9, 9}, 5))
	if c.At(0, 8) != (RGB{R: 9, G: 9, B: 9}) || c.At(0, 9) != (RGB{R: 9, G: 9, B: 9}) {
		t.Errorf("in-bounds part of clipped column missing")
	}
}

func TestFillColumn(t *testing.T) {
	c := newTestCanvas(t, 10, 10)
	c.FillColumn(7, 0, 3, red)
	for y := 0; y < 3; y++ {
		if c.At(7, y) != red {
			t.Errorf("(7,%d) not painted", y)
		}
	}
	if c.At(7, 3) != (RGB{}) {
		t.Errorf("(7,3) painted past height")
	}
	c.FillColumn(1, 5, 50, red)
	if c.At(1, 9) != red {
		t.Errorf("(1,9) not painted")
	}
}

func TestDrawGradient(t *testing.T) {
	c := newTestCanvas(t, 100, 4)
	c.DrawGradient()
	if got := c.At(0, 2); got != (RGB{}) {
		t.Errorf("left edge = %v, want black", got)
	}
	if got := c.At(50, 1); got != (RGB{R: 127}) {
		t.Errorf("middle = %v, want R=127", got)
	}
	if got := c.At(99, 3); got.R != 252 || got.G != 0 || got.B != 0 {
		t.Errorf("right edge = %v, want R=252", got)
	}
}

func TestSnapshotFlipsRows(t *testing.T) {
	c := newTestCanvas(t, 3, 2)
	c.FillRect(0, 0, 1, 1, red)
	img := c.Snapshot(nil)
	if got := img.RGBAAt(0, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom-left = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("top-left = %v, want opaque black", got)
	}
	if again := c.Snapshot(img); again != img {
		t.Errorf("Snapshot did not reuse a matching image")
	}
}

func TestDrawLineFarOffCanvasTerminates(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	// The float32 index cannot advance by one row at this magnitude.
	c.DrawLine(0, -200_000_000, 1, 200_000_000, 1, red)
	c.DrawLine(5, 300_000_000, 4, -300_000_000, 1, red)
}
