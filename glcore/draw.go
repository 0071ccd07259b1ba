// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glcore

import (
	"image"
	"image/color"

	"cogentcore.org/gltut/mesh"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mode returns the OpenGL primitive enum for the given mesh mode.
func Mode(md mesh.Modes) uint32 {
	switch md {
	case mesh.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case mesh.TriangleFan:
		return gl.TRIANGLE_FAN
	}
	return gl.TRIANGLES
}

// VertexArray is a [mesh.Mesh] uploaded to a vertex buffer,
// with its attribute layout recorded in a vertex array object.
type VertexArray struct {
	vao   uint32
	vbo   uint32
	mode  uint32
	count int32
}

// NewVertexArray uploads the mesh data and configures its attributes.
func NewVertexArray(m *mesh.Mesh) *VertexArray {
	va := &VertexArray{mode: Mode(m.Mode), count: int32(m.Count())}
	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)

	gl.GenBuffers(1, &va.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	if len(m.Data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Data)*4, gl.Ptr(m.Data), gl.STATIC_DRAW)
	}
	stride := int32(m.Stride())
	for i, a := range m.Attribs {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, int32(a.Size), gl.FLOAT, false, stride, gl.PtrOffset(m.Offset(i)))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return va
}

// Draw draws all of the vertices with the given program,
// and leaves no program or vertex array bound.
func (va *VertexArray) Draw(program uint32) {
	gl.UseProgram(program)
	gl.BindVertexArray(va.vao)
	gl.DrawArrays(va.mode, 0, va.count)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// Release deletes the buffer and vertex array objects.
func (va *VertexArray) Release() {
	if va.vbo != 0 {
		gl.DeleteBuffers(1, &va.vbo)
		va.vbo = 0
	}
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
		va.vao = 0
	}
}

// Viewport sets the viewport to the given framebuffer size.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer to the given color.
func Clear(c color.Color) {
	f := colorToFloat(c)
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func colorToFloat(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}

// ReadPixels reads back the given size of the current framebuffer,
// from the lower left corner, as a top-down image.
func ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	buf := make([]uint8, 4*width*height)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	flipRows(img.Pix, buf, 4*width)
	return img
}

// flipRows copies src rows of the given stride into dst in reverse order.
func flipRows(dst, src []uint8, stride int) {
	n := len(src) / stride
	for y := 0; y < n; y++ {
		copy(dst[y*stride:(y+1)*stride], src[(n-1-y)*stride:(n-y)*stride])
	}
}
