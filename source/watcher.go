// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reports changes to a set of source files.
// The directories containing the files are watched, so that files
// replaced by editors (written to a temp file and renamed) are seen.
type Watcher struct {
	watcher *fsnotify.Watcher

	// files maps cleaned absolute paths to the paths as given.
	files map[string]string

	changed chan string
	done    chan struct{}
}

// NewWatcher returns a new [Watcher] for the given file paths.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fw,
		files:   map[string]string{},
		changed: make(chan string, len(paths)+1),
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := absPath(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[abs] = p
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	go w.run()
	return w, nil
}

func absPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(p)
}

// Changed returns the channel on which the paths of changed files are
// sent, as they were given to [NewWatcher]. Sends never block: a change
// to a file that is already pending is dropped.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Drain returns all pending changed paths without blocking,
// without duplicates.
func (w *Watcher) Drain() []string {
	var paths []string
	seen := map[string]bool{}
	for {
		select {
		case p := <-w.changed:
			if !seen[p] {
				seen[p] = true
				paths = append(paths, p)
			}
		default:
			return paths
		}
	}
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			p, ok := w.files[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			select {
			case w.changed <- p:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
