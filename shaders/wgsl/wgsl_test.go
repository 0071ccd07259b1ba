// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wgsl

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blue = `@vertex
fn vs_main(@location(0) position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return position;
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 1.0, 1.0);
}
`

func TestTranslate(t *testing.T) {
	vs, err := Translate(blue, "vs_main")
	require.NoError(t, err)
	assert.Contains(t, vs, "#version 330 core")
	assert.Contains(t, vs, "void main()")
	assert.Contains(t, vs, "gl_Position")

	fs, err := Translate(blue, "fs_main")
	require.NoError(t, err)
	assert.Contains(t, fs, "#version 330 core")
	assert.NotContains(t, fs, "gl_Position")
}

func TestTranslateError(t *testing.T) {
	_, err := Translate("fn vs_main( {", "vs_main")
	assert.Error(t, err)
}

func TestLoadError(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	assert.Equal(t, "", Load("fn vs_main( {", "vs_main", "vertex"))
	assert.Contains(t, buf.String(), "Translation failure in vertex shader")
}
