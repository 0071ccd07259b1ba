// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// Positions are (x, y, z, w) in clip space: the origin is the center
// of the window, (-1, -1) and (1, 1) are opposite corners, y goes up,
// z must be within [-1, 1] and w is 1.

// Position is the attribute for vertex positions at location 0.
var Position = Attrib{Name: "position", Location: 0, Size: 4}

// Color is the attribute for vertex colors at location 1.
var Color = Attrib{Name: "color", Location: 1, Size: 4}

// Triangle returns a single triangle in the lower right of the window.
func Triangle() *Mesh {
	return New("triangle", Triangles, Position).
		Add(math32.Vec4(0.75, 0.75, 0, 1)).
		Add(math32.Vec4(0.75, -0.75, 0, 1)).
		Add(math32.Vec4(-0.75, -0.75, 0, 1))
}

// Square returns a diamond centered at the origin, drawn as
// a fan of 3 triangles around the top vertex.
func Square() *Mesh {
	return New("square", TriangleFan, Position).
		Add(math32.Vec4(0, 0.5, 0, 1)).
		Add(math32.Vec4(0, 0, 0, 1)).
		Add(math32.Vec4(0.5, 0, 0, 1)).
		Add(math32.Vec4(0, -0.5, 0, 1)).
		Add(math32.Vec4(-0.5, 0, 0, 1))
}

// ColorTriangle returns a triangle with a red, a green and
// a blue corner.
func ColorTriangle() *Mesh {
	return New("colortri", Triangles, Position, Color).
		Add(math32.Vec4(0, 0.5, 0, 1), math32.Vec4(1, 0, 0, 1)).
		Add(math32.Vec4(0.5, -0.366, 0, 1), math32.Vec4(0, 1, 0, 1)).
		Add(math32.Vec4(-0.5, -0.366, 0, 1), math32.Vec4(0, 0, 1, 1))
}
