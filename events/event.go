// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window event types and the listener
// lists used to dispatch them to subscribers.
package events

import (
	"fmt"
	"time"
)

// Event is the interface for all window events.
type Event interface {
	// Type returns the type of the event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether a listener has already handled
	// the event, which stops it from being sent to listeners
	// registered earlier.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()

	fmt.Stringer
}

// Base is the base type for all events, providing the basic event
// functionality. Concrete events embed it and set the type.
type Base struct {
	// Typ is the type of the event.
	Typ Types

	// Tm is the time at which the event was generated.
	Tm time.Time

	// Handled records whether the event was already handled.
	Handled bool
}

// New returns a new event of the given type, stamped with the
// current time.
func New(typ Types) *Base {
	ev := &Base{}
	ev.Init(typ)
	return ev
}

// Init initializes the event with the given type and the current time.
func (ev *Base) Init(typ Types) {
	ev.Typ = typ
	ev.Tm = time.Now()
}

func (ev *Base) Type() Types { return ev.Typ }

func (ev *Base) Time() time.Time { return ev.Tm }

func (ev *Base) IsHandled() bool { return ev.Handled }

func (ev *Base) SetHandled() { ev.Handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", ev.Typ, ev.Tm.Format("15:04:05.000"))
}

// DropEvent is sent when files are dropped onto a window,
// carrying the paths of the dropped files.
type DropEvent struct {
	Base

	// Files are the filesystem paths of the dropped files.
	Files []string
}

// NewDrop returns a new [DropEvent] for the given files.
func NewDrop(files []string) *DropEvent {
	ev := &DropEvent{Files: files}
	ev.Init(WindowDrop)
	return ev
}

func (ev *DropEvent) String() string {
	return fmt.Sprintf("%v{Files: %v, Time: %v}", ev.Typ, ev.Files, ev.Tm.Format("15:04:05.000"))
}
