// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides the interface between the windowing core
// and the underlying platform: window creation and properties, screen
// information, and event polling, all routed through a main-thread
// invoker where the platform requires thread affinity.
package system

import "github.com/johnkellyoxford/silk/mainthread"

// TheApp is the current [App]; only one is ever in effect.
// It is set by the driver package in use.
var TheApp App

// App represents the overall OS windowing system, and creates and
// tracks Windows and the physical screen(s) they live on.
type App interface {

	// Platform returns the platform type, which can be used
	// for conditionalizing behavior.
	Platform() Platforms

	// Name is the overall name of the application.
	Name() string

	// SetName sets the application name.
	SetName(name string)

	// Invoker returns the main-thread invoker for this app. Every
	// thread-affine native call the app or its windows make goes
	// through it.
	Invoker() *mainthread.Invoker

	// NScreens returns the number of different logical and/or
	// physical screens managed under this overall screen hardware.
	NScreens() int

	// Screen returns the screen for the given screen number. An
	// out-of-range number returns the first screen if any exist, so
	// callers holding a stale number still get a usable screen when
	// monitors come and go; it returns nil only when there are no
	// screens at all.
	Screen(n int) *Screen

	// ScreenByName returns the screen with the given name,
	// or nil if not found.
	ScreenByName(name string) *Screen

	// NWindows returns the number of windows open for this app.
	NWindows() int

	// Window returns the given window in the list of windows opened
	// under this app, in order of creation; nil for an invalid index.
	Window(win int) Window

	// WindowByName returns the window with the given name,
	// or nil if not found.
	WindowByName(name string) Window

	// NewWindow returns a new [Window] for this platform. A nil opts
	// is valid and means to use the default option values.
	NewWindow(opts *NewWindowOptions) (Window, error)

	// RemoveWindow removes the given Window from the app's list of
	// windows. It does not actually close it; see [Window.Close].
	RemoveWindow(win Window)

	// IsQuitting returns whether the app is in the process of
	// quitting.
	IsQuitting() bool

	// Quit closes all windows and releases platform resources.
	Quit()
}

// Platforms are all the supported platforms for system.
type Platforms int32

const (
	// MacOS is a Mac OS machine (aka Darwin).
	MacOS Platforms = iota

	// Linux is a Linux OS machine.
	Linux

	// Windows is a Microsoft Windows machine.
	Windows

	// Offscreen is the headless driver used for testing,
	// specified using the "offscreen" build tag.
	Offscreen

	// PlatformsN is the number of platforms.
	PlatformsN
)

var platformNames = [PlatformsN]string{"MacOS", "Linux", "Windows", "Offscreen"}

func (p Platforms) String() string {
	if p < 0 || p >= PlatformsN {
		return "PlatformsInvalid"
	}
	return platformNames[p]
}
