// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/johnkellyoxford/silk/events"
	"github.com/johnkellyoxford/silk/system"
	"github.com/johnkellyoxford/silk/system/driver/base"
)

// Window is the [system.Window] implementation for the desktop
// platform, wrapping a native GLFW window.
type Window struct {
	base.Window[*App]

	// Glw is the underlying GLFW window handle.
	Glw *glfw.Window
}

var _ system.Window = &Window{}

// loop.Surface implementation. The loop only calls these on the
// main goroutine, which owns the GL context.

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

func (w *Window) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

// Property setters: cache first, then marshal the native call.

func (w *Window) SetTitle(title string) {
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	w.App.Inv.Do(func() {
		w.Glw.SetTitle(title)
	})
}

func (w *Window) SetPosition(pos image.Point) {
	w.App.Inv.Do(func() {
		w.Glw.SetPos(pos.X, pos.Y)
	})
}

func (w *Window) SetSize(sz image.Point) {
	w.App.Inv.Do(func() {
		w.Glw.SetSize(sz.X, sz.Y)
	})
}

func (w *Window) SetDecorated(decorated bool) {
	w.Mu.Lock()
	w.Deco = decorated
	w.Mu.Unlock()
	w.App.Inv.Do(func() {
		if decorated {
			w.Glw.SetAttrib(glfw.Decorated, glfw.True)
		} else {
			w.Glw.SetAttrib(glfw.Decorated, glfw.False)
		}
	})
}

func (w *Window) SetState(state system.WindowStates) {
	w.App.Inv.Do(func() {
		switch state {
		case system.WindowMinimized:
			w.Glw.Iconify()
		case system.WindowMaximized:
			w.Glw.Maximize()
		case system.WindowFullscreen:
			mon := w.Glw.GetMonitor()
			if mon == nil {
				mon = glfw.GetPrimaryMonitor()
			}
			vm := mon.GetVideoMode()
			w.Glw.SetMonitor(mon, 0, 0, vm.Width, vm.Height, vm.RefreshRate)
			// no glfw callback fires for monitor changes
			if w.SetCachedState(system.WindowFullscreen) {
				w.SendWindowEvent(events.WindowStateChange)
			}
		case system.WindowNormal:
			if w.Glw.GetMonitor() != nil {
				// leaving fullscreen restores the cached geometry
				w.Mu.Lock()
				pos, sz := w.Pos, w.Sz
				w.Mu.Unlock()
				w.Glw.SetMonitor(nil, pos.X, pos.Y, sz.X, sz.Y, glfw.DontCare)
				if w.SetCachedState(system.WindowNormal) {
					w.SendWindowEvent(events.WindowStateChange)
				}
			}
			w.Glw.Restore()
		}
	})
}

// Visible is not cached; it queries the native layer through the
// invoker.
func (w *Window) Visible() bool {
	var vis bool
	w.App.Inv.Do(func() {
		vis = w.Glw.GetAttrib(glfw.Visible) == glfw.True
	})
	return vis
}

func (w *Window) Screen() *system.Screen {
	var sc *system.Screen
	w.App.Inv.Do(func() {
		// nil for windowed windows, so fall back to the screen
		// containing the window position
		if mon := w.Glw.GetMonitor(); mon != nil {
			sc = w.App.ScreenByName(mon.GetName())
		}
	})
	if sc == nil {
		sc = w.App.screenForPosition(w.Position())
	}
	return sc
}

func (w *Window) CloseReq() {
	w.App.Inv.Do(func() {
		w.Glw.SetShouldClose(true)
	})
}

func (w *Window) Close() {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	w.Closed = true
	w.Mu.Unlock()

	w.App.Mu.Lock()
	delete(w.App.Handles, w.Glw)
	w.App.Mu.Unlock()
	w.App.RemoveWindow(w)

	w.App.Inv.Do(func() {
		w.Glw.Destroy()
	})
}

// updateGeom refreshes the cached geometry from the native window.
// Must run on the main thread.
func (w *Window) updateGeom() {
	var pos, sz image.Point
	pos.X, pos.Y = w.Glw.GetPos()
	sz.X, sz.Y = w.Glw.GetSize()
	w.SetCachedGeom(&pos, &sz)
}

/////////////////////////////////////////////////////////
//  Window Callbacks

// Moved is the glfw position callback.
func (w *Window) Moved(gw *glfw.Window, x, y int) {
	pos := image.Point{x, y}
	w.SetCachedGeom(&pos, nil)
	w.SendWindowEvent(events.WindowMove)
}

// Resized is the glfw size callback.
func (w *Window) Resized(gw *glfw.Window, width, height int) {
	sz := image.Point{width, height}
	w.SetCachedGeom(nil, &sz)
	w.SendWindowEvent(events.WindowResize)
}

// OnCloseReq is the glfw close callback.
func (w *Window) OnCloseReq(gw *glfw.Window) {
	w.SendWindowEvent(events.WindowClose)
}

// OnFocus is the glfw focus callback.
func (w *Window) OnFocus(gw *glfw.Window, focused bool) {
	w.SetCachedFocus(focused)
	w.SendWindowEvent(events.WindowFocus)
}

// Iconify is the glfw iconify callback. A false value only says the
// window is no longer minimized; restoredState disambiguates between
// Normal and Fullscreen from auxiliary native state.
func (w *Window) Iconify(gw *glfw.Window, iconified bool) {
	st := system.WindowMinimized
	if !iconified {
		st = w.restoredState()
	}
	if w.SetCachedState(st) {
		w.SendWindowEvent(events.WindowStateChange)
	}
}

// Maximize is the glfw maximize callback.
func (w *Window) Maximize(gw *glfw.Window, maximized bool) {
	st := system.WindowMaximized
	if !maximized {
		st = w.restoredState()
	}
	if w.SetCachedState(st) {
		w.SendWindowEvent(events.WindowStateChange)
	}
}

// restoredState returns the state of a window that is no longer
// minimized. Runs inside a glfw callback, so native calls are safe.
func (w *Window) restoredState() system.WindowStates {
	return stateForRestore(w.Glw.GetMonitor() != nil,
		w.Glw.GetAttrib(glfw.Maximized) == glfw.True)
}

// stateForRestore decides the state of a window that is neither
// minimized nor being maximized. A false iconify/maximize callback
// value alone does not distinguish Normal from Fullscreen, so the
// monitor association decides first, then the maximized attribute.
func stateForRestore(onMonitor, maximized bool) system.WindowStates {
	switch {
	case onMonitor:
		return system.WindowFullscreen
	case maximized:
		return system.WindowMaximized
	default:
		return system.WindowNormal
	}
}

// Dropped is the glfw drop callback.
func (w *Window) Dropped(gw *glfw.Window, files []string) {
	w.Listeners.Call(events.NewDrop(files))
}
