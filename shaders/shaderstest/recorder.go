// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderstest provides a recording, in-memory implementation
// of [shaders.Context] for testing code that builds shader programs
// without a GPU.
package shaderstest

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/gltut/shaders"
)

// SyntaxError is the marker that makes a source fail to compile
// in a [Recorder] using the default compile rule.
const SyntaxError = "#error"

type shader struct {
	typ      shaders.ShaderTypes
	src      string
	compiled bool
	log      string
	deleted  bool
}

type program struct {
	attached []uint32
	linked   bool
	log      string
	deleted  bool
}

// Recorder is a fake [shaders.Context] that records every call in Calls.
// By default a shader fails to compile if its source is empty or
// contains [SyntaxError], or if its type is not a known stage; a program
// fails to link if any attached shader did not compile or if no vertex
// stage is attached.
type Recorder struct {
	// Calls are all of the calls made, formatted as "Name arg1 arg2".
	Calls []string

	// CompileLog, if set, replaces the default compile rule:
	// a non-empty result is the compile failure log.
	CompileLog func(typ shaders.ShaderTypes, src string) string

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
}

// NewRecorder returns a new [Recorder].
func NewRecorder() *Recorder {
	return &Recorder{shaders: map[uint32]*shader{}, programs: map[uint32]*program{}}
}

func (r *Recorder) record(name string, args ...any) {
	s := name
	for _, a := range args {
		s += fmt.Sprintf(" %v", a)
	}
	r.Calls = append(r.Calls, s)
}

// Index returns the index in Calls of the first call equal to call, or -1.
func (r *Recorder) Index(call string) int {
	return slices.Index(r.Calls, call)
}

// Count returns the number of calls with the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name || strings.HasPrefix(c, name+" ") {
			n++
		}
	}
	return n
}

// Live returns the number of shader and program objects not yet deleted.
func (r *Recorder) Live() (nshaders, nprograms int) {
	for _, s := range r.shaders {
		if !s.deleted {
			nshaders++
		}
	}
	for _, p := range r.programs {
		if !p.deleted {
			nprograms++
		}
	}
	return
}

// Attached returns the shaders currently attached to the program.
func (r *Recorder) Attached(prog uint32) []uint32 {
	if p := r.programs[prog]; p != nil {
		return slices.Clone(p.attached)
	}
	return nil
}

func (r *Recorder) CreateShader(typ shaders.ShaderTypes) uint32 {
	r.next++
	r.shaders[r.next] = &shader{typ: typ}
	r.record("CreateShader", typ.Label(), r.next)
	return r.next
}

func (r *Recorder) ShaderSource(sh uint32, src string) {
	r.record("ShaderSource", sh)
	if s := r.shaders[sh]; s != nil {
		s.src = src
	}
}

func (r *Recorder) CompileShader(sh uint32) {
	r.record("CompileShader", sh)
	s := r.shaders[sh]
	if s == nil {
		return
	}
	if r.CompileLog != nil {
		s.log = r.CompileLog(s.typ, s.src)
	} else {
		s.log = defaultCompileLog(s.typ, s.src)
	}
	s.compiled = s.log == ""
}

func defaultCompileLog(typ shaders.ShaderTypes, src string) string {
	switch {
	case typ.Label() == "":
		return "0:0(0): error: invalid shader type\n"
	case strings.TrimSpace(src) == "":
		return "0:1(1): error: syntax error, unexpected end of file\n"
	case strings.Contains(src, SyntaxError):
		return "0:1(1): error: syntax error, unexpected " + SyntaxError + "\n"
	}
	return ""
}

func (r *Recorder) ShaderCompiled(sh uint32) bool {
	r.record("ShaderCompiled", sh)
	s := r.shaders[sh]
	return s != nil && s.compiled
}

func (r *Recorder) ShaderInfoLog(sh uint32) string {
	r.record("ShaderInfoLog", sh)
	if s := r.shaders[sh]; s != nil {
		return s.log
	}
	return ""
}

func (r *Recorder) DeleteShader(sh uint32) {
	r.record("DeleteShader", sh)
	if s := r.shaders[sh]; s != nil {
		s.deleted = true
	}
}

func (r *Recorder) CreateProgram() uint32 {
	r.next++
	r.programs[r.next] = &program{}
	r.record("CreateProgram", r.next)
	return r.next
}

func (r *Recorder) AttachShader(prog, sh uint32) {
	r.record("AttachShader", prog, sh)
	if p := r.programs[prog]; p != nil {
		p.attached = append(p.attached, sh)
	}
}

func (r *Recorder) DetachShader(prog, sh uint32) {
	r.record("DetachShader", prog, sh)
	if p := r.programs[prog]; p != nil {
		p.attached = slices.DeleteFunc(p.attached, func(a uint32) bool { return a == sh })
	}
}

func (r *Recorder) LinkProgram(prog uint32) {
	r.record("LinkProgram", prog)
	p := r.programs[prog]
	if p == nil {
		return
	}
	p.log = ""
	hasVertex := false
	for _, sh := range p.attached {
		s := r.shaders[sh]
		if s == nil || !s.compiled {
			p.log += fmt.Sprintf("error: linking with uncompiled shader %d\n", sh)
			continue
		}
		if s.typ == shaders.VertexShader {
			hasVertex = true
		}
	}
	if p.log == "" && !hasVertex {
		p.log = "error: no vertex shader attached\n"
	}
	p.linked = p.log == ""
}

func (r *Recorder) ProgramLinked(prog uint32) bool {
	r.record("ProgramLinked", prog)
	p := r.programs[prog]
	return p != nil && p.linked
}

func (r *Recorder) ProgramInfoLog(prog uint32) string {
	r.record("ProgramInfoLog", prog)
	if p := r.programs[prog]; p != nil {
		return p.log
	}
	return ""
}

func (r *Recorder) DeleteProgram(prog uint32) {
	r.record("DeleteProgram", prog)
	if p := r.programs[prog]; p != nil {
		p.deleted = true
	}
}
