package desktop

import "testing"

func TestCursorCanvasPos(t *testing.T) {
	tests := []struct {
		name   string
		cx, cy float64
		x, y   float64
		ok     bool
	}{
		{"top-left", 0, 0, 0, 600, true},
		{"centre", 800, 600, 400, 300, true},
		{"bottom-right", 1599, 1199, 799.5, 0.5, true},
		{"left of window", -1, 10, 0, 0, false},
		{"below window", 10, 1200, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := CursorCanvasPos(tt.cx, tt.cy, 1600, 1200, 800, 600)
			if ok != tt.ok || x != tt.x || y != tt.y {
				t.Errorf("got (%v, %v, %v), want (%v, %v, %v)", x, y, ok, tt.x, tt.y, tt.ok)
			}
		})
	}
}

func TestCursorCanvasPosEmptyWindow(t *testing.T) {
	if _, _, ok := CursorCanvasPos(0, 0, 0, 10, 800, 600); ok {
		t.Error("accepted a zero-width window")
	}
}
