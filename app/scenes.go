// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"embed"

	"cogentcore.org/gltut/mesh"
)

// Shaders are the built-in shader sources of the scenes.
//
//go:embed shaders
var Shaders embed.FS

// Scenes are the tutorial scenes.
type Scenes int32 //enums:enum -transform lower

const (
	// Triangle is a single blue triangle.
	Triangle Scenes = iota

	// Square is a blue diamond drawn as a triangle fan.
	Square

	// ColorTri is a triangle with colors interpolated
	// from a red, a green and a blue corner.
	ColorTri
)

// scene has the mesh and built-in shader files of a scene.
type scene struct {
	mesh     func() *mesh.Mesh
	vertex   string
	fragment string
	wgsl     string
}

var scenes = map[Scenes]scene{
	Triangle: {mesh.Triangle, "shaders/blue.vert", "shaders/blue.frag", "shaders/blue.wgsl"},
	Square:   {mesh.Square, "shaders/blue.vert", "shaders/blue.frag", "shaders/blue.wgsl"},
	ColorTri: {mesh.ColorTriangle, "shaders/color.vert", "shaders/color.frag", "shaders/color.wgsl"},
}

// Mesh returns a new copy of the vertex data of the scene.
func (sc Scenes) Mesh() *mesh.Mesh {
	return scenes[sc].mesh()
}
