// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import "strings"

// CompileError is the error for a shader stage that failed to compile.
type CompileError struct {
	// Type is the kind of the stage that failed.
	Type ShaderTypes

	// Log is the full compiler diagnostic log.
	Log string
}

func (e *CompileError) Error() string {
	return "Compile failure in " + e.Type.Label() + " shader:\n" + strings.TrimRight(e.Log, "\x00\r\n")
}

// LinkError is the error for a program that failed to link.
type LinkError struct {
	// Log is the full linker diagnostic log.
	Log string
}

func (e *LinkError) Error() string {
	return "Linker failure: " + strings.TrimRight(e.Log, "\x00\r\n")
}
