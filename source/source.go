// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source loads shader source text from files and
// watches source files for changes.
package source

import (
	"io/fs"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/mitchellh/go-homedir"
)

// OpenError is the error for a source file that could not be read.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return "Could not open " + e.Path + ": " + e.Err.Error()
}

func (e *OpenError) Unwrap() error { return e.Err }

// Open returns the entire contents of the file at the given path,
// byte for byte. A leading ~ is expanded to the home directory.
func Open(path string) (string, error) {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return "", &OpenError{Path: path, Err: err}
	}
	b, err := os.ReadFile(fpath)
	if err != nil {
		return "", &OpenError{Path: path, Err: err}
	}
	return string(b), nil
}

// OpenFS returns the entire contents of the given file in fsys.
func OpenFS(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", &OpenError{Path: path, Err: err}
	}
	return string(b), nil
}

// Load is like [Open], except that a failure is logged
// and yields an empty string.
func Load(path string) string {
	s, err := Open(path)
	errors.Log(err)
	return s
}

// LoadFS is like [OpenFS], except that a failure is logged
// and yields an empty string.
func LoadFS(fsys fs.FS, path string) string {
	s, err := OpenFS(fsys, path)
	errors.Log(err)
	return s
}
