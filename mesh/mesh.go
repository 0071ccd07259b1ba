// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the hard-coded vertex data drawn by the
// tutorial scenes, as interleaved float32 attributes.
package mesh

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

// Modes are the primitive assembly modes for drawing a [Mesh].
type Modes int32 //enums:enum

const (
	// Triangles draws every group of 3 vertices as a separate triangle.
	Triangles Modes = iota

	// TriangleStrip draws a triangle for every vertex after the
	// first two, using it and the two before it.
	TriangleStrip

	// TriangleFan draws a triangle for every vertex after the
	// first two, using it, the one before it, and the first vertex.
	TriangleFan
)

// Attrib describes one vertex attribute of a [Mesh].
type Attrib struct {
	// Name is for documentation and debugging.
	Name string

	// Location is the shader input location of the attribute.
	Location uint32

	// Size is the number of float32 components, 1 to 4.
	Size int
}

// Mesh is vertex data with all attributes of a vertex stored
// next to each other, in the order of Attribs.
type Mesh struct {
	// Name of the mesh.
	Name string

	// Mode is how vertices are assembled into primitives.
	Mode Modes

	// Attribs are the per-vertex attributes, in storage order.
	Attribs []Attrib

	// Data is the interleaved vertex data.
	Data []float32
}

// New returns a new, empty [Mesh].
func New(name string, mode Modes, attribs ...Attrib) *Mesh {
	return &Mesh{Name: name, Mode: mode, Attribs: attribs}
}

// Components returns the number of float32 values per vertex.
func (m *Mesh) Components() int {
	n := 0
	for _, a := range m.Attribs {
		n += a.Size
	}
	return n
}

// Stride returns the number of bytes per vertex.
func (m *Mesh) Stride() int {
	return 4 * m.Components()
}

// Offset returns the byte offset of attribute i within a vertex.
func (m *Mesh) Offset(i int) int {
	off := 0
	for _, a := range m.Attribs[:i] {
		off += 4 * a.Size
	}
	return off
}

// Count returns the number of vertices.
func (m *Mesh) Count() int {
	nc := m.Components()
	if nc == 0 {
		return 0
	}
	return len(m.Data) / nc
}

// Add adds a vertex with one value per attribute, in attribute order.
// Each value is truncated to the size of its attribute.
func (m *Mesh) Add(values ...math32.Vector4) *Mesh {
	for i, a := range m.Attribs {
		var v math32.Vector4
		if i < len(values) {
			v = values[i]
		}
		m.Data = append(m.Data, []float32{v.X, v.Y, v.Z, v.W}[:a.Size]...)
	}
	return m
}

// Vertex returns the values of vertex i, one per attribute,
// with missing components set to 0.
func (m *Mesh) Vertex(i int) []math32.Vector4 {
	vs := make([]math32.Vector4, len(m.Attribs))
	d := m.Data[i*m.Components():]
	for ai, a := range m.Attribs {
		var c [4]float32
		copy(c[:], d[:a.Size])
		vs[ai] = math32.Vec4(c[0], c[1], c[2], c[3])
		d = d[a.Size:]
	}
	return vs
}
