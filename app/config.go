// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app is the tutorial application: it opens a window,
// builds the shader program of the selected scene, uploads its
// vertex data, and draws it every frame until the window is closed.
package app

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/gltut/shaders"
)

// Config is the configuration for the tutorial application.
type Config struct {

	// Scene is the tutorial scene to draw.
	Scene Scenes `default:"square"`

	// Vertex is a vertex shader file to use instead of
	// the built-in one of the scene.
	Vertex string

	// Fragment is a fragment shader file to use instead of
	// the built-in one of the scene.
	Fragment string

	// Geometry is an optional geometry shader file,
	// linked between the vertex and fragment stages.
	Geometry string

	// WGSL uses WGSL shader sources, translated to GLSL:
	// the built-in ones of the scene, or the Vertex and Fragment files,
	// with vs_main and fs_main entry points.
	WGSL bool

	// Title is the window title.
	Title string `default:"Hello OpenGL!"`

	// Width is the window width.
	Width int `default:"640"`

	// Height is the window height.
	Height int `default:"640"`

	// Clear is the background color, as a hex string.
	Clear string `default:"#000000"`

	// Strict exits with an error if the shader program
	// does not build, instead of drawing with it anyway.
	Strict bool

	// Watch rebuilds the shader program when one of the
	// shader files changes.
	Watch bool

	// Screenshot, if set, renders a single frame in a hidden
	// window, saves it to this image file, and exits.
	Screenshot string
}

// Validate returns an error if the config can not be run.
func (c *Config) Validate() error {
	if _, ok := scenes[c.Scene]; !ok {
		return fmt.Errorf("app: unknown scene %v", c.Scene)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("app: invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Shaders returns the shader program config for the scene:
// the built-in sources, with the files of the config in their place
// where they are set.
func (c *Config) Shaders() *shaders.Config {
	sc := scenes[c.Scene]
	entry := func(name string) string {
		if c.WGSL {
			return name
		}
		return ""
	}
	stage := func(typ shaders.ShaderTypes, file, builtin, wgsl, ent string) shaders.Source {
		s := shaders.Source{Type: typ, File: file, Entry: entry(ent)}
		if file != "" {
			return s
		}
		s.FS = Shaders
		s.File = builtin
		if c.WGSL {
			s.File = wgsl
		}
		return s
	}
	cfg := shaders.NewConfig(c.Scene.String())
	cfg.Sources = append(cfg.Sources, stage(shaders.VertexShader, c.Vertex, sc.vertex, sc.wgsl, "vs_main"))
	if c.Geometry != "" {
		cfg.AddFile(shaders.GeometryShader, c.Geometry)
	}
	cfg.Sources = append(cfg.Sources, stage(shaders.FragmentShader, c.Fragment, sc.fragment, sc.wgsl, "fs_main"))
	return cfg
}
