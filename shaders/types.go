// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

// ShaderTypes are the kinds of shader stages that
// can be linked together into a [Program].
type ShaderTypes int32 //enums:enum -transform lower -line-comment

const (
	// VertexShader runs once per vertex.
	VertexShader ShaderTypes = iota // vertex

	// GeometryShader runs once per primitive,
	// between the vertex and fragment stages.
	GeometryShader // geometry

	// FragmentShader runs once per rasterized fragment.
	FragmentShader // fragment
)

// Label returns the human-readable stage name used in diagnostics:
// "vertex", "geometry" or "fragment". Any other value has no label
// and returns "".
func (st ShaderTypes) Label() string {
	if st < 0 || st >= ShaderTypesN {
		return ""
	}
	return st.String()
}
