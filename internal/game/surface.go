package game

// Surface is the drawing and query surface the core issues calls against.
// *Canvas is the only implementation; drivers hand it to listeners.
type Surface interface {
	Width() int
	Height() int

	Clear()
	DrawGradient()
	FillRect(x, y, w, h int, c RGB)
	DrawLine(x1, y1, x2, y2, width int, c RGB)
	DrawColumn(x, y int, pixels []byte)
	FillColumn(x, y, height int, c RGB)
	DrawGradientCircle(x, y, radius int, c RGB)
}

// Key identifies the keys a driver reports state for.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeySpace
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeySpace:
		return "Space"
	}
	return "Unknown"
}

// Context is what a driver passes to a Listener each frame.
type Context interface {
	Surface
	KeyDown(k Key) bool
}

// Listener is implemented by the core and driven by a frame driver.
type Listener interface {
	// OnInit is called once before the first frame.
	OnInit(ctx Context)
	// OnRender is called once per frame after the canvas has been cleared.
	OnRender(ctx Context, deltaSeconds float64)
}

// MouseListener is optionally implemented by listeners that track the cursor.
// Coordinates are in canvas pixels.
type MouseListener interface {
	OnMouseMove(x, y float64)
}

// KeyState is a fixed key-state table drivers embed to satisfy Context.
type KeyState struct {
	down [keyCount]bool
}

func (ks *KeyState) SetKey(k Key, down bool) {
	if k >= 0 && k < keyCount {
		ks.down[k] = down
	}
}

func (ks *KeyState) KeyDown(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return ks.down[k]
}

// FrameContext pairs a canvas with key state. Drivers own one and update
// the keys before every OnRender.
type FrameContext struct {
	*Canvas
	KeyState
}

func NewFrameContext(c *Canvas) *FrameContext {
	return &FrameContext{Canvas: c}
}
