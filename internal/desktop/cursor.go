package desktop

// CursorCanvasPos maps window coordinates (origin top-left) to canvas
// coordinates (row 0 at the bottom).
func CursorCanvasPos(cx, cy float64, winW, winH, canvasW, canvasH int) (float64, float64, bool) {
	if winW <= 0 || winH <= 0 {
		return 0, 0, false
	}
	if cx < 0 || cy < 0 || cx >= float64(winW) || cy >= float64(winH) {
		return 0, 0, false
	}
	x := cx * float64(canvasW) / float64(winW)
	y := float64(canvasH) - cy*float64(canvasH)/float64(winH)
	return x, y, true
}
