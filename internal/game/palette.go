package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Scale multiplies each channel by k, truncating toward zero.
// k is expected in [0, 1].
func (c RGB) Scale(k float64) RGB {
	return RGB{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
	}
}

var Palette = struct {
	Ember  RGB
	HUD    RGB
	Sprite RGB
}{
	Ember:  RGB{R: 150, G: 60, B: 0},
	HUD:    RGB{R: 230, G: 230, B: 200},
	Sprite: RGB{R: 255, G: 0, B: 0},
}
