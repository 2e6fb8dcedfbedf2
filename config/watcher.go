// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/johnkellyoxford/silk/logx"
)

// Watcher reloads a settings file whenever it changes on disk and
// reports the new settings to a callback.
type Watcher struct {
	filename string
	onChange func(*Settings)

	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	lastLoad time.Time
}

// Watch starts watching the given settings file. Whenever the file is
// written, created, or renamed, the settings are reloaded and passed
// to onChange. The watch lasts until [Watcher.Close] is called.
//
// The file's directory is watched rather than the file itself, so
// that editors that replace the file by rename are still seen.
func Watch(filename string, onChange func(*Settings)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		filename: filename,
		onChange: onChange,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// Close stops watching. It is safe to call more than once, from any
// goroutine.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logx.PrintError("settings watcher error", "err", err)
		}
	}
}

// reload reads the file again, skipping bursts of events closer
// together than 100ms (editors often produce several per save).
func (w *Watcher) reload() {
	w.mu.Lock()
	now := time.Now()
	if now.Sub(w.lastLoad) < 100*time.Millisecond {
		w.mu.Unlock()
		return
	}
	w.lastLoad = now
	w.mu.Unlock()

	se := &Settings{}
	if err := Load(se, w.filename); err != nil {
		logx.PrintError("failed to reload settings", "file", w.filename, "err", err)
		return
	}
	logx.PrintDebug("reloaded settings", "file", w.filename)
	w.onChange(se)
}
