// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/gltut/glcore"
	"cogentcore.org/gltut/source"
	"cogentcore.org/gltut/window"
)

// Run opens the window and draws the scene until the window is closed.
func Run(c *Config) error { //cli:cmd -root
	if err := c.Validate(); err != nil {
		return err
	}
	bg, err := colors.FromHex(c.Clear)
	if err != nil {
		return err
	}
	w, err := window.New(window.Config{Title: c.Title, Width: c.Width, Height: c.Height, Hidden: c.Screenshot != ""})
	if err != nil {
		return err
	}
	defer w.Close()

	lv := NewLive(glcore.Context{}, c.Shaders())
	err = lv.Build()
	defer lv.Release()
	if err != nil && c.Strict {
		return err
	}

	va := glcore.NewVertexArray(c.Scene.Mesh())
	defer va.Release()

	var wt *source.Watcher
	if c.Watch {
		files := lv.Config.Files()
		if len(files) == 0 {
			slog.Warn("nothing to watch: only built-in shaders are used")
		} else if wt, err = source.NewWatcher(files...); errors.Log(err) == nil {
			defer wt.Close()
		}
	}

	render := func() {
		if wt != nil && len(wt.Drain()) > 0 {
			lv.Reload()
		}
		glcore.Clear(bg)
		va.Draw(lv.Handle())
	}

	if c.Screenshot != "" {
		render()
		img := glcore.ReadPixels(w.Size())
		return imagex.Save(img, c.Screenshot)
	}
	w.Run(render)
	return nil
}
