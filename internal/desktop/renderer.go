//go:build !ebiten

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"partifles/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer uploads the canvas into an RGB texture every frame and draws it
// on a full-window quad.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32

	uCanvas int32

	width, height int32
}

// Triangle strip, per vertex: x, y, u, v.
var quadVerts = [16]float32{
	1, 1, 1, 1,
	1, -1, 1, 0,
	-1, 1, 0, 1,
	-1, -1, 0, 0,
}

func NewRenderer(width, height int) (*Renderer, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{prog: prog, width: int32(width), height: int32(height)}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)

	stride := int32(4 * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aUV (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))

	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, r.width, r.height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)

	gl.UseProgram(prog)
	r.uCanvas = gl.GetUniformLocation(prog, gl.Str("uCanvas\x00"))
	gl.Uniform1i(r.uCanvas, 0)

	gl.BindVertexArray(0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		r.Destroy()
		return nil, fmt.Errorf("renderer setup: gl error 0x%x", code)
	}
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Present uploads c and draws it stretched over a fbW x fbH framebuffer.
func (r *Renderer) Present(c *game.Canvas, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, r.width, r.height, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(c.Pix))

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}
