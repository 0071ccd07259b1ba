// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"

	"cogentcore.org/gltut/shaders"
)

// Live is a shader program that can be rebuilt from its sources
// while it is in use.
type Live struct {
	// Config has the sources of the program.
	Config *shaders.Config

	// Program is the current program.
	Program *shaders.Program

	ctx shaders.Context
}

// NewLive returns a new [Live] for the given sources, not yet built.
func NewLive(ctx shaders.Context, cfg *shaders.Config) *Live {
	return &Live{Config: cfg, ctx: ctx}
}

// Build builds the program, replacing any current one even if
// the build fails, and returns the build errors.
func (lv *Live) Build() error {
	pr, err := shaders.BuildConfig(lv.ctx, lv.Config)
	lv.Program.Release(lv.ctx)
	lv.Program = pr
	return err
}

// Reload rebuilds the program. If the new program does not build,
// it is released and the current one is kept.
func (lv *Live) Reload() error {
	pr, err := shaders.BuildConfig(lv.ctx, lv.Config)
	if err != nil {
		pr.Release(lv.ctx)
		slog.Warn("shader program did not build; keeping the previous one", "program", lv.Config.Name)
		return err
	}
	lv.Program.Release(lv.ctx)
	lv.Program = pr
	slog.Info("reloaded shader program", "program", lv.Config.Name)
	return nil
}

// Handle returns the current program object, or 0 if there is none.
func (lv *Live) Handle() uint32 {
	if lv.Program == nil {
		return 0
	}
	return lv.Program.Handle
}

// Release releases the current program.
func (lv *Live) Release() {
	lv.Program.Release(lv.ctx)
	lv.Program = nil
}
