// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"io/fs"

	"cogentcore.org/gltut/shaders/wgsl"
	"cogentcore.org/gltut/source"
)

// Source describes where the text of one stage comes from:
// inline Code, or a File read from FS (or the os file system if FS is nil).
// If Entry is set, the text is WGSL and Entry names the entry point
// function to translate to GLSL; otherwise it is GLSL.
type Source struct {
	// Type is the kind of the stage.
	Type ShaderTypes `toml:"type"`

	// Code is inline source text, used if non-empty.
	Code string `toml:"code"`

	// File is the path of the source file, used if Code is empty.
	File string `toml:"file"`

	// FS is the file system for File. If nil, the os file system is used.
	FS fs.FS `toml:"-"`

	// Entry is the WGSL entry point function, for WGSL sources.
	Entry string `toml:"entry"`
}

// Stage loads the source text and returns the corresponding [Stage].
// A file that cannot be opened or WGSL that cannot be translated
// is logged and yields empty source, which then fails to compile.
func (s *Source) Stage() Stage {
	code := s.Code
	if code == "" && s.File != "" {
		if s.FS != nil {
			code = source.LoadFS(s.FS, s.File)
		} else {
			code = source.Load(s.File)
		}
	}
	if s.Entry != "" && code != "" {
		code = wgsl.Load(code, s.Entry, s.Type.Label())
	}
	return Stage{Type: s.Type, Source: code}
}

// Config enumerates the stage sources of a program, in link order.
type Config struct {
	// Name is used for logging.
	Name string `toml:"name"`

	// Sources are the stage sources, in order.
	Sources []Source `toml:"sources"`
}

// NewConfig returns a new, empty [Config] with the given name.
func NewConfig(name string) *Config {
	return &Config{Name: name}
}

// AddCode adds a GLSL stage with inline source code.
func (c *Config) AddCode(typ ShaderTypes, code string) *Config {
	c.Sources = append(c.Sources, Source{Type: typ, Code: code})
	return c
}

// AddFile adds a GLSL stage read from the given file path.
func (c *Config) AddFile(typ ShaderTypes, file string) *Config {
	c.Sources = append(c.Sources, Source{Type: typ, File: file})
	return c
}

// AddFS adds a GLSL stage read from the given file in fsys (e.g., embed files).
func (c *Config) AddFS(typ ShaderTypes, fsys fs.FS, file string) *Config {
	c.Sources = append(c.Sources, Source{Type: typ, File: file, FS: fsys})
	return c
}

// AddWGSL adds a stage with inline WGSL code, translated to GLSL
// from the given entry point function.
func (c *Config) AddWGSL(typ ShaderTypes, code, entry string) *Config {
	c.Sources = append(c.Sources, Source{Type: typ, Code: code, Entry: entry})
	return c
}

// Files returns the os file paths of all sources read from files,
// which is what needs to be watched to pick up source changes.
func (c *Config) Files() []string {
	var files []string
	for _, s := range c.Sources {
		if s.Code == "" && s.File != "" && s.FS == nil {
			files = append(files, s.File)
		}
	}
	return files
}

// Stages loads all of the sources and returns the stages, in order.
func (c *Config) Stages() []Stage {
	sts := make([]Stage, len(c.Sources))
	for i := range c.Sources {
		sts[i] = c.Sources[i].Stage()
	}
	return sts
}

// BuildConfig loads the sources of the given config and calls [Build].
func BuildConfig(ctx Context, c *Config) (*Program, error) {
	return Build(ctx, c.Stages()...)
}
