// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"sync"

	"github.com/johnkellyoxford/silk/events"
	"github.com/johnkellyoxford/silk/system"
)

// Window contains the data and logic common to all implementations
// of [system.Window]. The cached property fields are updated by the
// driver's native callbacks, so the corresponding getters never need
// to touch the native layer.
type Window[A system.App] struct {
	// App is the app the window belongs to.
	App A

	// Nm is the name of the window.
	Nm string

	// Titl is the cached title of the window.
	Titl string

	// Pos is the cached position of the window.
	Pos image.Point

	// Sz is the cached size of the window.
	Sz image.Point

	// Deco is the cached decorated flag of the window.
	Deco bool

	// Stat is the cached window state.
	Stat system.WindowStates

	// Focs is the cached focus flag of the window.
	Focs bool

	// Closed is whether the window has been closed.
	Closed bool

	// Mu protects the cached fields, which are written by native
	// callbacks on the main goroutine and read from any goroutine.
	Mu sync.Mutex

	// Listeners are the registered event listener lists.
	Listeners events.Listeners
}

func (w *Window[A]) Name() string {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Nm
}

func (w *Window[A]) SetName(name string) {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	w.Nm = name
}

func (w *Window[A]) Title() string {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Titl
}

func (w *Window[A]) Position() image.Point {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Pos
}

func (w *Window[A]) Size() image.Point {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Sz
}

func (w *Window[A]) Decorated() bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Deco
}

func (w *Window[A]) State() system.WindowStates {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Stat
}

func (w *Window[A]) Focused() bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Focs
}

func (w *Window[A]) IsClosed() bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	return w.Closed
}

func (w *Window[A]) Events() *events.Listeners {
	return &w.Listeners
}

// SendWindowEvent dispatches an event of the given type to the
// window's listeners. Driver callbacks call this after updating
// the cache.
func (w *Window[A]) SendWindowEvent(typ events.Types) {
	w.Listeners.Call(events.New(typ))
}

// SetCachedGeom updates the cached position and/or size.
// A nil pointer leaves the corresponding value unchanged.
func (w *Window[A]) SetCachedGeom(pos, sz *image.Point) {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	if pos != nil {
		w.Pos = *pos
	}
	if sz != nil {
		w.Sz = *sz
	}
}

// SetCachedState updates the cached window state, returning whether
// it changed.
func (w *Window[A]) SetCachedState(st system.WindowStates) bool {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	if w.Stat == st {
		return false
	}
	w.Stat = st
	return true
}

// SetCachedFocus updates the cached focus flag.
func (w *Window[A]) SetCachedFocus(focused bool) {
	w.Mu.Lock()
	defer w.Mu.Unlock()
	w.Focs = focused
}
