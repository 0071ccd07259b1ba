// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"cogentcore.org/core/base/errors"
)

// Program is a linked shader program. It owns the GPU program object
// until [Program.Release] is called; the builder never reclaims it.
type Program struct {
	// Handle is the program object. It is 0 once released.
	Handle uint32

	// Linked is whether the link succeeded.
	Linked bool

	// Log is the linker diagnostic log, only retrieved on failure.
	Log string

	// Units are the compiled stages that were linked, in order,
	// with their compile status and diagnostics. After [Build]
	// their shader objects have already been released.
	Units []*Unit
}

// Link creates a program object, attaches every unit, links, and then
// detaches every unit again, whatever the outcome of the link, so that
// the units can be deleted independently of the program.
// The program is always returned: on failure the diagnostic log is
// recorded on it and logged.
func Link(ctx Context, units ...*Unit) *Program {
	pr := &Program{Handle: ctx.CreateProgram(), Units: units}
	for _, u := range units {
		ctx.AttachShader(pr.Handle, u.Handle)
	}
	ctx.LinkProgram(pr.Handle)
	pr.Linked = ctx.ProgramLinked(pr.Handle)
	if !pr.Linked {
		pr.Log = ctx.ProgramInfoLog(pr.Handle)
		errors.Log(pr.LinkErr())
	}
	for _, u := range units {
		ctx.DetachShader(pr.Handle, u.Handle)
	}
	return pr
}

// Build compiles every stage in order, links the results into a program,
// and releases the compiled stages, which are redundant once linked.
// The program is always returned, whether or not every step succeeded.
// The error joins every [*CompileError] and the [*LinkError], if any;
// it is nil only when the program is usable for rendering.
// Callers that want to keep going with a broken program can ignore it.
func Build(ctx Context, stages ...Stage) (*Program, error) {
	units := make([]*Unit, len(stages))
	for i, st := range stages {
		units[i] = Compile(ctx, st.Type, st.Source)
	}
	pr := Link(ctx, units...)
	for _, u := range units {
		u.Release(ctx)
	}
	return pr, pr.Err()
}

// OK returns whether every stage compiled and the program linked.
func (pr *Program) OK() bool {
	return pr.Err() == nil
}

// LinkErr returns a [*LinkError] if the link failed, else nil.
func (pr *Program) LinkErr() error {
	if pr.Linked {
		return nil
	}
	return &LinkError{Log: pr.Log}
}

// Err returns all of the compile and link errors joined together,
// or nil if there are none.
func (pr *Program) Err() error {
	var errs []error
	for _, u := range pr.Units {
		if err := u.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := pr.LinkErr(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Unit returns the first unit of the given type, or nil if there is none.
func (pr *Program) Unit(typ ShaderTypes) *Unit {
	for _, u := range pr.Units {
		if u.Type == typ {
			return u
		}
	}
	return nil
}

// Release deletes the program object. It is safe to call more than once,
// and on a nil program.
func (pr *Program) Release(ctx Context) {
	if pr == nil || pr.Handle == 0 {
		return
	}
	ctx.DeleteProgram(pr.Handle)
	pr.Handle = 0
}
