//go:build !android

package game

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"dragonsleap/internal/engine"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer presents the composed picture as one textured quad.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uTex int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(screenVertSrc, screenFragSrc)
	if err != nil {
		return nil, fmt.Errorf("screen program: %w", err)
	}
	r := &Renderer{prog: prog}

	// A unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	gl.BindVertexArray(0)
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

// EnsureTexture creates the screen texture if it doesn't exist yet.
func (r *Renderer) EnsureTexture(frame *image.RGBA) {
	if r.tex != 0 {
		return
	}
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b := frame.Bounds()
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix),
	)
}

// Upload re-sends the picture to the texture.
func (r *Renderer) Upload(frame *image.RGBA) {
	if r.tex == 0 {
		r.EnsureTexture(frame)
		return
	}
	b := frame.Bounds()
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(b.Dx()), int32(b.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix),
	)
}

// Draw clears the framebuffer and draws the picture centred at the largest
// whole-number scale that fits, or shrunk to fit when the window is smaller
// than one picture.
func (r *Renderer) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.tex == 0 {
		return
	}

	x, y, w, h := letterbox(fbW, fbH)
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func letterbox(fbW, fbH int) (x, y, w, h int) {
	scale := min(fbW/engine.ScreenWidth, fbH/engine.ScreenHeight)
	if scale >= 1 {
		w, h = engine.ScreenWidth*scale, engine.ScreenHeight*scale
	} else if fbW*engine.ScreenHeight < fbH*engine.ScreenWidth {
		w, h = fbW, fbW*engine.ScreenHeight/engine.ScreenWidth
	} else {
		w, h = fbH*engine.ScreenWidth/engine.ScreenHeight, fbH
	}
	return (fbW - w) / 2, (fbH - h) / 2, w, h
}
