// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

// Context is the set of graphics calls needed to compile and link
// shader programs. Handles are opaque unsigned integers, with 0
// never referring to a valid object. Implementations are not
// expected to be safe for concurrent use: the context must be current
// on the calling thread for the whole duration of a build.
type Context interface {
	// CreateShader makes a new, empty shader object of the given type.
	CreateShader(typ ShaderTypes) uint32

	// ShaderSource replaces the source of the shader with src.
	ShaderSource(shader uint32, src string)

	// CompileShader compiles the current source of the shader.
	CompileShader(shader uint32)

	// ShaderCompiled reports whether the last compile succeeded.
	ShaderCompiled(shader uint32) bool

	// ShaderInfoLog returns the diagnostic log of the last compile.
	ShaderInfoLog(shader uint32) string

	// DeleteShader releases the shader object.
	DeleteShader(shader uint32)

	// CreateProgram makes a new, empty program object.
	CreateProgram() uint32

	// AttachShader adds the shader to the set linked into the program.
	AttachShader(program, shader uint32)

	// DetachShader removes the shader from the program's link set.
	DetachShader(program, shader uint32)

	// LinkProgram links all attached shaders into the program.
	LinkProgram(program uint32)

	// ProgramLinked reports whether the last link succeeded.
	ProgramLinked(program uint32) bool

	// ProgramInfoLog returns the diagnostic log of the last link.
	ProgramInfoLog(program uint32) string

	// DeleteProgram releases the program object.
	DeleteProgram(program uint32)
}
