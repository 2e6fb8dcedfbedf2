// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "sync"

// Listeners registers ordered lists of event listener functions
// to receive different event types. Listeners are closure methods
// with all context captured, registered on specific objects.
//
// Listeners is safe for concurrent use: registration can happen on
// any goroutine, and [Listeners.Call] snapshots the registered
// functions before dispatching, so a listener may add or remove
// listeners during its own invocation without corrupting the list.
type Listeners struct {
	mu    sync.Mutex
	funcs map[Types][]func(ev Event)
}

// Add adds a listener function for the given event type.
func (ls *Listeners) Add(typ Types, fun func(ev Event)) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.funcs == nil {
		ls.funcs = make(map[Types][]func(Event))
	}
	ls.funcs[typ] = append(ls.funcs[typ], fun)
}

// Call calls all listener functions for the given event.
// It goes in reverse order, so the last functions added are the
// first called, and it stops when the event is marked as handled.
// This allows for a natural override behavior without requiring a
// more complex priority mechanism. The list of functions is
// snapshotted under the lock before any listener runs, so the
// invocation order for one event is deterministic even if
// listeners mutate the registration during dispatch.
func (ls *Listeners) Call(ev Event) {
	if ev.IsHandled() {
		return
	}
	ls.mu.Lock()
	regd := ls.funcs[ev.Type()]
	snap := make([]func(Event), len(regd))
	copy(snap, regd)
	ls.mu.Unlock()

	for i := len(snap) - 1; i >= 0; i-- {
		snap[i](ev)
		if ev.IsHandled() {
			break
		}
	}
}

// Len returns the number of listeners registered for the given type.
func (ls *Listeners) Len(typ Types) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.funcs[typ])
}
