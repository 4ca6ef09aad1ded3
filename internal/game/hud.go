package game

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// HUD draws short text lines into a canvas with the 7x13 bitmap face.
type HUD struct {
	face font.Face
	col  RGB
	mask *image.Alpha
}

func NewHUD(col RGB) *HUD {
	return &HUD{face: basicfont.Face7x13, col: col}
}

// DrawText draws text with its top-left corner x pixels from the left and
// top pixels from the top of the displayed image.
func (h *HUD) DrawText(dst Surface, x, top int, text string) {
	if text == "" {
		return
	}
	m := h.face.Metrics()
	w := font.MeasureString(h.face, text).Ceil()
	lh := m.Height.Ceil()
	if w <= 0 || lh <= 0 {
		return
	}

	if h.mask == nil || h.mask.Bounds().Dx() < w || h.mask.Bounds().Dy() < lh {
		h.mask = image.NewAlpha(image.Rect(0, 0, max(w, 256), lh))
	} else {
		clear(h.mask.Pix)
	}
	d := font.Drawer{
		Dst:  h.mask,
		Src:  image.Opaque,
		Face: h.face,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	d.DrawString(text)

	// Canvas row 0 is the bottom of the image.
	base := dst.Height() - 1 - top
	for py := 0; py < lh; py++ {
		for px := 0; px < w; px++ {
			if h.mask.AlphaAt(px, py).A < 128 {
				continue
			}
			dst.FillRect(x+px, base-py, 1, 1, h.col)
		}
	}
}
