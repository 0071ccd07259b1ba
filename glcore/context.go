// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [shaders.Context] and the few drawing
// calls the tutorials need on top of OpenGL 3.3 core profile.
// Everything in this package requires a current OpenGL context
// on the calling thread, and [Init] must have been called.
package glcore

import (
	"strings"

	"cogentcore.org/gltut/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the OpenGL function pointers for the current context.
func Init() error {
	return gl.Init()
}

// Version returns the OpenGL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// ShaderType returns the OpenGL shader type enum for the given stage
// type, or 0 if there is none.
func ShaderType(typ shaders.ShaderTypes) uint32 {
	switch typ {
	case shaders.VertexShader:
		return gl.VERTEX_SHADER
	case shaders.GeometryShader:
		return gl.GEOMETRY_SHADER
	case shaders.FragmentShader:
		return gl.FRAGMENT_SHADER
	}
	return 0
}

// Context is the OpenGL [shaders.Context]. The zero value is ready to use.
type Context struct{}

var _ shaders.Context = Context{}

func (Context) CreateShader(typ shaders.ShaderTypes) uint32 {
	return gl.CreateShader(ShaderType(typ))
}

func (Context) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (Context) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n+1)
	gl.GetProgramInfoLog(program, n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}
