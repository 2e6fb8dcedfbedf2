// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "image"

// NewWindowOptions are optional arguments to [App.NewWindow].
type NewWindowOptions struct {
	// Title is the window title to show in the title bar.
	Title string

	// Size is the initial size of the window, in window-manager
	// coordinates.
	Size image.Point

	// Pos is the initial position of the upper-left corner of the
	// window, in window-manager coordinates.
	Pos image.Point

	// Decorated sets whether the window has a border, title bar,
	// and close widgets.
	Decorated bool

	// Fullscreen makes the window take over its whole monitor.
	Fullscreen bool

	// Maximized makes the window start maximized.
	Maximized bool
}

// GetTitle returns a sanitized form of the window title.
func (o *NewWindowOptions) GetTitle() string {
	if o.Title == "" {
		return "Untitled"
	}
	return o.Title
}

// Fixup fills in sensible defaults for unset option values.
func (o *NewWindowOptions) Fixup() {
	if o.Size.X <= 0 {
		o.Size.X = 1024
	}
	if o.Size.Y <= 0 {
		o.Size.Y = 768
	}
	if o.Pos.X < 0 {
		o.Pos.X = 0
	}
	if o.Pos.Y < 0 {
		o.Pos.Y = 0
	}
}

// StartState returns the window state the options ask for.
func (o *NewWindowOptions) StartState() WindowStates {
	switch {
	case o.Fullscreen:
		return WindowFullscreen
	case o.Maximized:
		return WindowMaximized
	default:
		return WindowNormal
	}
}
