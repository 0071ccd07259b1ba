// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"cogentcore.org/core/base/errors"
)

// Stage is the source text for one stage of a shader program.
type Stage struct {
	// Type is the kind of the stage.
	Type ShaderTypes

	// Source is the complete source text, submitted as a single string.
	Source string
}

// NewStage returns a new [Stage] with the given type and source.
func NewStage(typ ShaderTypes, src string) Stage {
	return Stage{Type: typ, Source: src}
}

// Unit is one compiled shader stage.
type Unit struct {
	// Type is the kind of the stage.
	Type ShaderTypes

	// Handle is the shader object. It is 0 once released.
	Handle uint32

	// Compiled is whether the compile succeeded.
	Compiled bool

	// Log is the compiler diagnostic log, only retrieved on failure.
	Log string
}

// Compile creates a shader object of the given type, submits src as its
// only source string, and compiles it. The unit is always returned: on
// failure the diagnostic log is recorded on it and logged, tagged with
// the stage label, and the unit is still usable as link input.
// Empty source is accepted and simply fails to compile.
func Compile(ctx Context, typ ShaderTypes, src string) *Unit {
	u := &Unit{Type: typ, Handle: ctx.CreateShader(typ)}
	ctx.ShaderSource(u.Handle, src)
	ctx.CompileShader(u.Handle)
	u.Compiled = ctx.ShaderCompiled(u.Handle)
	if !u.Compiled {
		u.Log = ctx.ShaderInfoLog(u.Handle)
		errors.Log(u.Err())
	}
	return u
}

// Err returns a [*CompileError] if the unit failed to compile, else nil.
func (u *Unit) Err() error {
	if u.Compiled {
		return nil
	}
	return &CompileError{Type: u.Type, Log: u.Log}
}

// Release deletes the shader object. It is safe to call more than once.
func (u *Unit) Release(ctx Context) {
	if u.Handle == 0 {
		return
	}
	ctx.DeleteShader(u.Handle)
	u.Handle = 0
}
