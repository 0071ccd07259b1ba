// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gltut runs the OpenGL tutorial scenes.
package main

import (
	"runtime"

	"cogentcore.org/core/cli"
	"cogentcore.org/gltut/app"
)

func init() {
	// must lock main thread for glfw!
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("gltut", "Gltut draws simple shapes with OpenGL shader programs.")
	opts.DefaultFiles = []string{"gltut.toml"}
	cli.Run(opts, &app.Config{}, app.Run)
}
