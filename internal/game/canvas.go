package game

import (
	"fmt"
	"image"
	"math"
)

// Canvas is a row-major RGB pixel buffer, 3 bytes per pixel.
// Pixel (x, y) lives at Pix[3*(y*width+x) : 3*(y*width+x)+3].
//
// Geometry is never rejected: every primitive bounds-checks the buffer index
// it is about to write and silently skips anything outside.
type Canvas struct {
	width     int
	height    int
	numPixels int
	Pix       []byte
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	return &Canvas{
		width:     width,
		height:    height,
		numPixels: width * height,
		Pix:       make([]byte, width*height*3),
	}, nil
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the colour at (x, y), or black when out of range.
func (c *Canvas) At(x, y int) RGB {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGB{}
	}
	i := (y*c.width + x) * 3
	return RGB{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2]}
}

func (c *Canvas) Clear() {
	clear(c.Pix)
}

// DrawGradient fills the buffer with a horizontal red ramp. Debug aid.
func (c *Canvas) DrawGradient() {
	for i := 0; i < c.numPixels; i++ {
		c.Pix[i*3] = byte(255 * (float32(i%c.width) / float32(c.width)))
		c.Pix[i*3+1] = 0
		c.Pix[i*3+2] = 0
	}
}

// putPixel writes pixel index i (not byte offset) when it lies inside the buffer.
func (c *Canvas) putPixel(i int, col RGB) {
	if i < 0 || i >= c.numPixels {
		return
	}
	c.Pix[i*3] = col.R
	c.Pix[i*3+1] = col.G
	c.Pix[i*3+2] = col.B
}

// FillRect paints [y, y+h) x [x, x+w). Each pixel index is checked against
// the whole buffer, so a rect running off the right edge wraps into the next row.
func (c *Canvas) FillRect(x, y, w, h int, col RGB) {
	for row := y; row < y+h; row++ {
		start := row*c.width + x
		for i := start; i < start+w; i++ {
			c.putPixel(i, col)
		}
	}
}

// DrawLine rasterizes from (x1, y1) to (x2, y2). Steep lines (|dy/dx| > 1)
// step along y, the rest along x. Thickness is a run of width pixels centred
// on each point along the buffer's linear index, not a true perpendicular.
//
// Steep lines walk a float32 index, so endpoints are expected within a few
// million rows of the canvas; a walk that stops advancing ends early.
func (c *Canvas) DrawLine(x1, y1, x2, y2, width int, col RGB) {
	k := float32(abs(y2-y1)) / float32(abs(x1-x2))
	if math.IsInf(float64(k), 0) || k > 1 {
		c.drawLineAlongY(x1, y1, x2, y2, width, col)
	} else {
		c.drawLineAlongX(x1, y1, x2, y2, width, col)
	}
}

func (c *Canvas) drawLineAlongX(x1, y1, x2, y2, width int, col RGB) {
	xa, ya, xb, yb := x1, y1, x2, y2
	if x1 >= x2 {
		xa, ya, xb, yb = x2, y2, x1, y1
	}
	k := float32(yb-ya) / float32(xb-xa)

	for ix := 0; ix < xb-xa; ix++ {
		y := float32(ya) + float32(ix)*k
		x := xa + ix
		c.thickRun(x+int(y)*c.width, width, col)
	}
}

func (c *Canvas) drawLineAlongY(x1, y1, x2, y2, width int, col RGB) {
	xa, ya, xb, yb := x1, y1, x2, y2
	if y1 >= y2 {
		xa, ya, xb, yb = x2, y2, x1, y1
	}
	k := float32(xb-xa) / float32(yb-ya)
	step := k + float32(c.width)
	end := float32(yb * c.width)

	for i := float32(ya*c.width + xa); i < end; {
		c.thickRun(int(i), width, col)
		next := i + step
		if next == i {
			break
		}
		i = next
	}
}

// thickRun writes pixel indices [i-width/2, i+width/2], clamped to the buffer.
func (c *Canvas) thickRun(i, width int, col RGB) {
	for j := max(0, i-width/2); j <= i+width/2 && j < c.numPixels; j++ {
		c.putPixel(j, col)
	}
}

// DrawColumn writes one RGB triplet per 3 input bytes, stepping one row per
// triplet starting at (x, y). A trailing partial triplet is ignored.
func (c *Canvas) DrawColumn(x, y int, pixels []byte) {
	i := y*c.width + x
	for p := 0; p+2 < len(pixels); p += 3 {
		if i >= 0 && i < c.numPixels {
			j := i * 3
			c.Pix[j] = pixels[p]
			c.Pix[j+1] = pixels[p+1]
			c.Pix[j+2] = pixels[p+2]
		}
		i += c.width
	}
}

// FillColumn paints height pixels of a single colour upward in row order from (x, y).
func (c *Canvas) FillColumn(x, y, height int, col RGB) {
	i := y*c.width + x
	for n := 0; n < height; n++ {
		c.putPixel(i, col)
		i += c.width
	}
}

// DrawGradientCircle blends col onto the buffer inside the circle with a
// linear radial falloff: alpha is 1 at the centre and 0 at the rim.
// result = alpha*col + (1-alpha)*existing, truncated.
func (c *Canvas) DrawGradientCircle(x, y, radius int, col RGB) {
	if radius <= 0 {
		return
	}
	r := float64(radius)
	for row := max(0, y-radius); row < c.height && row < y+radius; row++ {
		dy := abs(y - row)
		w := int(math.Sqrt(float64(radius*radius - dy*dy)))

		for px := max(0, x-w); px < x+w && px < c.width; px++ {
			dx := px - x
			dist := math.Sqrt(float64(dx*dx+dy*dy)) / r
			alpha := 1.0 - dist

			i := (row*c.width + px) * 3
			c.Pix[i] = blend(alpha, col.R, c.Pix[i])
			c.Pix[i+1] = blend(alpha, col.G, c.Pix[i+1])
			c.Pix[i+2] = blend(alpha, col.B, c.Pix[i+2])
		}
	}
}

func blend(alpha float64, src, dst uint8) uint8 {
	return uint8(int(alpha*float64(src)+(1.0-alpha)*float64(dst)) & 0xFF)
}

// Snapshot copies the buffer into a top-down RGBA image. Row 0 of the canvas
// is the bottom of the picture, so rows are flipped.
func (c *Canvas) Snapshot(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != c.width || dst.Bounds().Dy() != c.height {
		dst = image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	}
	for y := 0; y < c.height; y++ {
		src := c.Pix[y*c.width*3 : (y+1)*c.width*3]
		row := dst.Pix[(c.height-1-y)*dst.Stride:]
		for x := 0; x < c.width; x++ {
			row[x*4] = src[x*3]
			row[x*4+1] = src[x*3+1]
			row[x*4+2] = src[x*3+2]
			row[x*4+3] = 0xFF
		}
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
