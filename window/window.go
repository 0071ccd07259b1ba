// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a glfw window with a current OpenGL 3.3 core
// context and runs a blocking render loop in it until the user
// presses escape or closes the window.
//
// IMPORTANT: glfw must only be used from the main thread, so programs
// using this package must call runtime.LockOSThread in an init function.
package window

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/gltut/glcore"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config has the window parameters.
type Config struct {
	// Title is the window title.
	Title string

	// Width and Height are the window size in screen coordinates.
	Width, Height int

	// Hidden makes the window invisible, for offscreen rendering.
	Hidden bool
}

// Window is an open glfw window whose OpenGL context is current.
type Window struct {
	// Glw is the underlying glfw window.
	Glw *glfw.Window
}

// New initializes glfw and opens a new window with a current
// OpenGL 3.3 core profile context, and loads the OpenGL functions.
// Escape closes the window, and resizing updates the viewport.
func New(c Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if c.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	glw, err := glfw.CreateWindow(c.Width, c.Height, c.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	glw.MakeContextCurrent()
	if err := glcore.Init(); err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	slog.Info("opened window", "title", c.Title, "OpenGL", glcore.Version())

	w := &Window{Glw: glw}
	glw.SetKeyCallback(func(glw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if closeKey(key, action) {
			glw.SetShouldClose(true)
		}
	})
	glw.SetFramebufferSizeCallback(func(glw *glfw.Window, width, height int) {
		glcore.Viewport(width, height)
	})
	glcore.Viewport(w.Size())
	return w, nil
}

// closeKey returns whether the key event should close the window.
func closeKey(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (width, height int) {
	return w.Glw.GetFramebufferSize()
}

// Run calls render, swaps buffers and processes events,
// until the window should close.
func (w *Window) Run(render func()) {
	for !w.Glw.ShouldClose() {
		render()
		w.Glw.SwapBuffers()
		glfw.PollEvents()
	}
}

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	w.Glw.Destroy()
	glfw.Terminate()
}

// Must is a helper for simple examples that logs
// and panics if the window could not be opened.
func Must(w *Window, err error) *Window {
	if errors.Log(err) != nil {
		panic(err)
	}
	return w
}
