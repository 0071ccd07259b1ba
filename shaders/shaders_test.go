// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/gltut/shaders"
	"cogentcore.org/gltut/shaders/shaderstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSource = `#version 330

layout(location = 0) in vec4 position;
void main()
{
    gl_Position = position;
}`

const fragmentSource = `#version 330

out vec4 outputColor;
void main()
{
   outputColor = vec4(0.0f, 0.0f, 1.0f, 1.0f);
}`

// captureLog sends the default logger output to the returned buffer
// for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, "vertex", shaders.VertexShader.Label())
	assert.Equal(t, "geometry", shaders.GeometryShader.Label())
	assert.Equal(t, "fragment", shaders.FragmentShader.Label())
	assert.Equal(t, "", shaders.ShaderTypes(17).Label())
	assert.Equal(t, "", shaders.ShaderTypes(-1).Label())

	var st shaders.ShaderTypes
	assert.NoError(t, st.SetString("fragment"))
	assert.Equal(t, shaders.FragmentShader, st)
	assert.Error(t, st.SetString("pixel"))
}

func TestCompile(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	u := shaders.Compile(ctx, shaders.VertexShader, vertexSource)
	assert.NotZero(t, u.Handle)
	assert.True(t, u.Compiled)
	assert.Empty(t, u.Log)
	assert.NoError(t, u.Err())
	assert.Equal(t, 0, ctx.Count("ShaderInfoLog"))
	assert.Empty(t, buf.String())

	h := u.Handle
	assert.Equal(t, []string{
		"CreateShader vertex 1",
		"ShaderSource 1",
		"CompileShader 1",
		"ShaderCompiled 1",
	}, ctx.Calls)
	assert.Equal(t, uint32(1), h)
}

func TestCompileFailure(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	u := shaders.Compile(ctx, shaders.FragmentShader, "void main() { "+shaderstest.SyntaxError+" }")
	assert.NotZero(t, u.Handle)
	assert.False(t, u.Compiled)
	assert.NotEmpty(t, u.Log)
	assert.Equal(t, 1, ctx.Count("ShaderInfoLog"))

	var ce *shaders.CompileError
	require.ErrorAs(t, u.Err(), &ce)
	assert.Equal(t, shaders.FragmentShader, ce.Type)
	assert.Equal(t, u.Log, ce.Log)

	out := buf.String()
	assert.Contains(t, out, "Compile failure in fragment shader:")
	assert.Contains(t, out, "syntax error")
	assert.NotContains(t, out, "%s")
}

func TestCompileEmptySource(t *testing.T) {
	captureLog(t)
	ctx := shaderstest.NewRecorder()
	u := shaders.Compile(ctx, shaders.VertexShader, "")
	assert.NotZero(t, u.Handle)
	assert.False(t, u.Compiled)
	assert.Error(t, u.Err())
}

func TestCompileUnknownType(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	u := shaders.Compile(ctx, shaders.ShaderTypes(9), vertexSource)
	assert.False(t, u.Compiled)
	assert.Contains(t, buf.String(), "Compile failure in  shader:")
}

func TestCompileErrorMessage(t *testing.T) {
	err := &shaders.CompileError{Type: shaders.GeometryShader, Log: "0:3(2): error: bad\n\x00"}
	assert.Equal(t, "Compile failure in geometry shader:\n0:3(2): error: bad", err.Error())
	lerr := &shaders.LinkError{Log: "error: no main\n"}
	assert.Equal(t, "Linker failure: error: no main", lerr.Error())
}

func TestLink(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	vs := shaders.Compile(ctx, shaders.VertexShader, vertexSource)
	fs := shaders.Compile(ctx, shaders.FragmentShader, fragmentSource)
	pr := shaders.Link(ctx, vs, fs)
	assert.NotZero(t, pr.Handle)
	assert.True(t, pr.Linked)
	assert.True(t, pr.OK())
	assert.NoError(t, pr.Err())
	assert.Empty(t, buf.String())

	// detached after the link, but the stages are not deleted
	link := ctx.Index("LinkProgram 3")
	require.GreaterOrEqual(t, link, 0)
	assert.Less(t, ctx.Index("AttachShader 3 1"), link)
	assert.Less(t, ctx.Index("AttachShader 3 2"), link)
	assert.Greater(t, ctx.Index("DetachShader 3 1"), link)
	assert.Greater(t, ctx.Index("DetachShader 3 2"), link)
	assert.Empty(t, ctx.Attached(pr.Handle))
	assert.Equal(t, 0, ctx.Count("DeleteShader"))
	assert.Same(t, fs, pr.Unit(shaders.FragmentShader))
	assert.Nil(t, pr.Unit(shaders.GeometryShader))
}

func TestLinkFailure(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	vs := shaders.Compile(ctx, shaders.VertexShader, vertexSource)
	fs := shaders.Compile(ctx, shaders.FragmentShader, shaderstest.SyntaxError)
	buf.Reset()
	pr := shaders.Link(ctx, vs, fs)
	assert.NotZero(t, pr.Handle)
	assert.False(t, pr.Linked)
	assert.NotEmpty(t, pr.Log)
	assert.Contains(t, buf.String(), "Linker failure: ")

	// detached even though the link failed
	assert.Greater(t, ctx.Index("DetachShader 3 2"), ctx.Index("LinkProgram 3"))
	assert.Empty(t, ctx.Attached(pr.Handle))

	var le *shaders.LinkError
	assert.ErrorAs(t, pr.Err(), &le)
	assert.ErrorAs(t, pr.LinkErr(), &le)
}

func TestBuild(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	pr, err := shaders.Build(ctx,
		shaders.NewStage(shaders.VertexShader, vertexSource),
		shaders.NewStage(shaders.FragmentShader, fragmentSource))
	require.NoError(t, err)
	assert.True(t, pr.OK())
	assert.Equal(t, uint32(3), pr.Handle)
	assert.Empty(t, buf.String())

	// compile all, link, release all
	assert.Less(t, ctx.Index("CompileShader 2"), ctx.Index("CreateProgram 3"))
	detach := ctx.Index("DetachShader 3 2")
	assert.Greater(t, ctx.Index("DeleteShader 1"), detach)
	assert.Greater(t, ctx.Index("DeleteShader 2"), detach)
	for _, u := range pr.Units {
		assert.Zero(t, u.Handle)
	}
	ns, np := ctx.Live()
	assert.Equal(t, 0, ns)
	assert.Equal(t, 1, np)

	pr.Release(ctx)
	pr.Release(ctx)
	assert.Equal(t, 1, ctx.Count("DeleteProgram"))
	_, np = ctx.Live()
	assert.Equal(t, 0, np)
}

func TestBuildFailure(t *testing.T) {
	buf := captureLog(t)
	ctx := shaderstest.NewRecorder()
	pr, err := shaders.Build(ctx,
		shaders.NewStage(shaders.VertexShader, vertexSource),
		shaders.NewStage(shaders.FragmentShader, "out vec4 c; void main() { c = "+shaderstest.SyntaxError+"; }"))
	require.Error(t, err)
	require.NotNil(t, pr)
	assert.NotZero(t, pr.Handle)
	assert.False(t, pr.OK())

	var ce *shaders.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, shaders.FragmentShader, ce.Type)
	var le *shaders.LinkError
	assert.True(t, errors.As(err, &le))

	assert.True(t, pr.Unit(shaders.VertexShader).Compiled)
	assert.False(t, pr.Unit(shaders.FragmentShader).Compiled)

	// the failed stage is still linked and released
	assert.GreaterOrEqual(t, ctx.Index("AttachShader 3 2"), 0)
	assert.GreaterOrEqual(t, ctx.Index("DeleteShader 2"), 0)
	ns, _ := ctx.Live()
	assert.Equal(t, 0, ns)

	out := buf.String()
	assert.Contains(t, out, "Compile failure in fragment shader:")
	assert.Contains(t, out, "Linker failure: ")
	assert.Less(t, strings.Index(out, "Compile failure"), strings.Index(out, "Linker failure"))
}

func TestBuildNoStages(t *testing.T) {
	captureLog(t)
	ctx := shaderstest.NewRecorder()
	pr, err := shaders.Build(ctx)
	assert.Error(t, err)
	assert.NotZero(t, pr.Handle)
	assert.Empty(t, pr.Units)
}

func TestConfig(t *testing.T) {
	captureLog(t)
	fsys := fstest.MapFS{
		"shaders/blue.frag": &fstest.MapFile{Data: []byte(fragmentSource)},
	}
	cfg := shaders.NewConfig("blue").
		AddCode(shaders.VertexShader, vertexSource).
		AddFS(shaders.FragmentShader, fsys, "shaders/blue.frag")
	assert.Empty(t, cfg.Files())

	sts := cfg.Stages()
	require.Len(t, sts, 2)
	assert.Equal(t, shaders.NewStage(shaders.VertexShader, vertexSource), sts[0])
	assert.Equal(t, shaders.NewStage(shaders.FragmentShader, fragmentSource), sts[1])

	ctx := shaderstest.NewRecorder()
	pr, err := shaders.BuildConfig(ctx, cfg)
	assert.NoError(t, err)
	assert.True(t, pr.OK())
}

func TestConfigMissingFile(t *testing.T) {
	buf := captureLog(t)
	cfg := shaders.NewConfig("missing").
		AddCode(shaders.VertexShader, vertexSource).
		AddFile(shaders.FragmentShader, "testdata/does-not-exist.frag")
	assert.Equal(t, []string{"testdata/does-not-exist.frag"}, cfg.Files())

	ctx := shaderstest.NewRecorder()
	pr, err := shaders.BuildConfig(ctx, cfg)
	assert.Error(t, err)
	assert.False(t, pr.Unit(shaders.FragmentShader).Compiled)

	out := buf.String()
	assert.Contains(t, out, "Could not open testdata/does-not-exist.frag")
	assert.Contains(t, out, "Compile failure in fragment shader:")
}

func TestConfigWGSL(t *testing.T) {
	captureLog(t)
	code := `@vertex
fn vs_main(@location(0) position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return position;
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 1.0, 1.0);
}
`
	cfg := shaders.NewConfig("wgsl").
		AddWGSL(shaders.VertexShader, code, "vs_main").
		AddWGSL(shaders.FragmentShader, code, "fs_main")
	sts := cfg.Stages()
	require.Len(t, sts, 2)
	for _, st := range sts {
		assert.Contains(t, st.Source, "#version 330 core")
		assert.Contains(t, st.Source, "void main()")
	}
}
