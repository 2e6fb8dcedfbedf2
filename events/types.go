// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of window event. The type names both the
// source of the event and what changed, so listeners can select
// exactly the notifications they care about.
type Types int64

const (
	// UnknownType is the zero value and an unknown event type.
	UnknownType Types = iota

	// WindowMove is sent when the window changes position on screen.
	// The new position is available from the window's Position method.
	WindowMove

	// WindowResize is sent when the window changes size.
	// The new size is available from the window's Size method.
	WindowResize

	// WindowClose is sent when the window has been asked to close,
	// either by the user or the platform. It is a notification only;
	// the loop observes the native should-close flag at the top of
	// each iteration.
	WindowClose

	// WindowFocus is sent when the window gains or loses keyboard
	// focus. The current focus is available from the window.
	WindowFocus

	// WindowStateChange is sent when the window transitions between
	// the normal, minimized, maximized, and fullscreen states.
	WindowStateChange

	// WindowDrop is sent when files are dropped onto the window.
	// The event is a [DropEvent] carrying the dropped paths.
	WindowDrop

	// TypesN is the number of event types.
	TypesN
)

var typeNames = [TypesN]string{
	"UnknownType",
	"WindowMove",
	"WindowResize",
	"WindowClose",
	"WindowFocus",
	"WindowStateChange",
	"WindowDrop",
}

func (tp Types) String() string {
	if tp < 0 || tp >= TypesN {
		return "TypesInvalid"
	}
	return typeNames[tp]
}
