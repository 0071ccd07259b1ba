// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders builds GPU shader programs from source text:
// each stage is compiled, the compiled stages are linked into a
// program, and the intermediate compiled stages are released.
//
// All graphics calls go through a [Context], which must be current
// on the calling thread. Compile and link failures are logged, recorded
// on the returned [Unit] and [Program], and returned as errors from
// [Build], but a program handle is always produced so that callers
// can decide whether to continue rendering with it.
package shaders

//go:generate core generate
