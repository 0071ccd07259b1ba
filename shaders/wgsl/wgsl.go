// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wgsl translates WGSL shader source into GLSL 330 core
// source, using the naga shader compiler, so that shaders written
// for WebGPU can be built into OpenGL programs.
package wgsl

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// Version is the GLSL version that WGSL is translated to.
var Version = glsl.Version330

// Translate parses the WGSL code and returns GLSL source for the
// given entry point function, which becomes the GLSL main function.
func Translate(code, entry string) (string, error) {
	ast, err := naga.Parse(code)
	if err != nil {
		return "", err
	}
	module, err := naga.LowerWithSource(ast, code)
	if err != nil {
		return "", err
	}
	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion:        Version,
		EntryPoint:         entry,
		ForceHighPrecision: true,
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// Load is like [Translate], except that a translation failure is logged,
// tagged with the given stage label, and yields empty source.
func Load(code, entry, label string) string {
	out, err := Translate(code, entry)
	if err != nil {
		errors.Log(fmt.Errorf("Translation failure in %s shader entry %q: %w", label, entry, err))
		return ""
	}
	return out
}
