// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/johnkellyoxford/silk/events"
	"github.com/johnkellyoxford/silk/loop"
)

// Window is a double-buffered OS-specific hardware window.
//
// Property getters whose values are kept current by native callbacks
// (position, size, title, decorated, state) return the cached value
// without touching the native layer; setters and the non-cached
// getters marshal onto the main thread through the app's invoker.
//
// Window includes [loop.Surface], so a window can be handed directly
// to a [loop.Driver] as the surface it drives.
type Window interface {
	loop.Surface

	// Name returns the name of the window.
	Name() string

	// SetName sets the name of the window.
	SetName(name string)

	// Title returns the cached title of the window.
	Title() string

	// SetTitle sets the title of the window.
	SetTitle(title string)

	// Position returns the cached position of the upper-left corner
	// of the window, in window-manager coordinates.
	Position() image.Point

	// SetPosition moves the window to the given position.
	SetPosition(pos image.Point)

	// Size returns the cached size of the window.
	Size() image.Point

	// SetSize sets the size of the window.
	SetSize(sz image.Point)

	// Decorated returns whether the window has a border, title bar,
	// and close widgets (cached).
	Decorated() bool

	// SetDecorated sets whether the window has window decorations.
	SetDecorated(decorated bool)

	// State returns the cached window state (normal, minimized,
	// maximized, or fullscreen).
	State() WindowStates

	// SetState transitions the window to the given state.
	SetState(state WindowStates)

	// Visible reports whether the window is currently visible.
	// Visibility is not cached: the call queries the native layer
	// through the invoker.
	Visible() bool

	// Focused returns whether the window has keyboard focus (cached).
	Focused() bool

	// Screen returns the screen the window is on.
	Screen() *Screen

	// Events returns the listener lists for this window's events.
	// Native state-change callbacks update the window's cache and
	// then dispatch the corresponding [events] type here.
	Events() *events.Listeners

	// CloseReq requests that the window close, setting the native
	// should-close flag that the loop observes at the top of its
	// next iteration.
	CloseReq()

	// Close destroys the window and releases its native resources.
	Close()

	// IsClosed returns whether the window has been closed.
	IsClosed() bool
}

// WindowStates are the mutually exclusive display states a window
// can be in.
type WindowStates int32

const (
	// WindowNormal is the default windowed state.
	WindowNormal WindowStates = iota

	// WindowMinimized means the window is iconified.
	WindowMinimized

	// WindowMaximized means the window fills the work area.
	WindowMaximized

	// WindowFullscreen means the window owns a whole monitor.
	WindowFullscreen

	// WindowStatesN is the number of window states.
	WindowStatesN
)

var windowStateNames = [WindowStatesN]string{"Normal", "Minimized", "Maximized", "Fullscreen"}

func (ws WindowStates) String() string {
	if ws < 0 || ws >= WindowStatesN {
		return "WindowStatesInvalid"
	}
	return windowStateNames[ws]
}
