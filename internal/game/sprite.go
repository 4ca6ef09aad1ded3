package game

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// SpriteGrid describes how a sheet is sliced. Frames are read row by row;
// NumFrames stops early when the last row is partly blank (0 = every cell).
type SpriteGrid struct {
	NumFrames int
	Cols      int
	Rows      int
	FrameW    int
	FrameH    int
}

// SpriteSheet holds decoded frames ready to blit into a canvas.
type SpriteSheet struct {
	Path   string
	FrameW int
	FrameH int

	frames []*image.RGBA
	colBuf []byte
}

// LoadSprite loads a single-frame image.
func LoadSprite(fsys fs.FS, path string) (*SpriteSheet, error) {
	img, err := decodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return sliceSheet(path, img, SpriteGrid{NumFrames: 1, Cols: 1, Rows: 1, FrameW: b.Dx(), FrameH: b.Dy()}), nil
}

// LoadSpriteSheet loads a sheet of Cols x Rows frames of FrameW x FrameH.
// The image size must match the grid exactly.
func LoadSpriteSheet(fsys fs.FS, path string, g SpriteGrid) (*SpriteSheet, error) {
	if g.Cols <= 0 || g.Rows <= 0 || g.FrameW <= 0 || g.FrameH <= 0 {
		return nil, fmt.Errorf("load sprite %s: %w: grid %dx%d of %dx%d",
			path, ErrSpriteGeometry, g.Cols, g.Rows, g.FrameW, g.FrameH)
	}
	img, err := decodeImage(fsys, path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() != g.Cols*g.FrameW {
		return nil, fmt.Errorf("load sprite %s: %w: width %d, want %d", path, ErrSpriteGeometry, b.Dx(), g.Cols*g.FrameW)
	}
	if b.Dy() != g.Rows*g.FrameH {
		return nil, fmt.Errorf("load sprite %s: %w: height %d, want %d", path, ErrSpriteGeometry, b.Dy(), g.Rows*g.FrameH)
	}
	return sliceSheet(path, img, g), nil
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: decode: %w", path, err)
	}
	Logger().Debug("sprite decoded", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}

func sliceSheet(path string, img image.Image, g SpriteGrid) *SpriteSheet {
	limit := g.Cols * g.Rows
	if g.NumFrames > 0 && g.NumFrames < limit {
		limit = g.NumFrames
	}
	s := &SpriteSheet{
		Path:   path,
		FrameW: g.FrameW,
		FrameH: g.FrameH,
		frames: make([]*image.RGBA, 0, limit),
		colBuf: make([]byte, 0, g.FrameH*3),
	}
	origin := img.Bounds().Min
	for y := 0; y < g.Rows && len(s.frames) < limit; y++ {
		for x := 0; x < g.Cols && len(s.frames) < limit; x++ {
			frame := image.NewRGBA(image.Rect(0, 0, g.FrameW, g.FrameH))
			src := image.Pt(origin.X+x*g.FrameW, origin.Y+y*g.FrameH)
			draw.Draw(frame, frame.Bounds(), img, src, draw.Src)
			s.frames = append(s.frames, frame)
		}
	}
	return s
}

func (s *SpriteSheet) NumFrames() int { return len(s.frames) }

// Frame returns frame i, or nil when out of range.
func (s *SpriteSheet) Frame(i int) *image.RGBA {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// DrawFrame blits frame i with its bottom-left corner at canvas (x, y).
// Each image column is written bottom-up with DrawColumn, split into runs of
// non-transparent pixels so transparent areas leave the canvas untouched.
func (s *SpriteSheet) DrawFrame(dst Surface, i, x, y int) {
	frame := s.Frame(i)
	if frame == nil {
		return
	}
	for col := 0; col < s.FrameW; col++ {
		runStart := 0
		s.colBuf = s.colBuf[:0]
		for n := 0; n < s.FrameH; n++ {
			// n counts up the canvas, so read the image from its last row.
			o := frame.PixOffset(col, s.FrameH-1-n)
			if frame.Pix[o+3] == 0 {
				if len(s.colBuf) > 0 {
					dst.DrawColumn(x+col, y+runStart, s.colBuf)
					s.colBuf = s.colBuf[:0]
				}
				runStart = n + 1
				continue
			}
			s.colBuf = append(s.colBuf, frame.Pix[o], frame.Pix[o+1], frame.Pix[o+2])
		}
		if len(s.colBuf) > 0 {
			dst.DrawColumn(x+col, y+runStart, s.colBuf)
		}
	}
}
