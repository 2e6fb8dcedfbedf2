// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"image"
	"sync/atomic"

	"github.com/johnkellyoxford/silk/events"
	"github.com/johnkellyoxford/silk/system"
	"github.com/johnkellyoxford/silk/system/driver/base"
)

// Window is the [system.Window] implementation for the offscreen
// platform. It has no native surface; it records the operations that
// would reach one, so that tests can inspect them.
type Window struct {
	base.Window[*App]

	// shouldClose is the surface close flag, set by [Window.CloseReq].
	shouldClose atomic.Bool

	// swaps counts [Window.SwapBuffers] calls.
	swaps atomic.Int64

	// swapInterval is the last value passed to [Window.SetSwapInterval],
	// offset by one so that zero means never set.
	swapInterval atomic.Int64

	// visible mirrors the native visibility attribute. It is only
	// accessed through the invoker, like the real attribute would be.
	visible bool
}

var _ system.Window = (*Window)(nil)

func (w *Window) PollEvents() {}

func (w *Window) ShouldClose() bool {
	return w.shouldClose.Load()
}

func (w *Window) SwapBuffers() {
	w.swaps.Add(1)
}

func (w *Window) SetSwapInterval(interval int) {
	w.swapInterval.Store(int64(interval) + 1)
}

// Swaps returns the number of times SwapBuffers has been called.
func (w *Window) Swaps() int {
	return int(w.swaps.Load())
}

// LastSwapInterval returns the last interval passed to SetSwapInterval,
// and whether it has been set at all.
func (w *Window) LastSwapInterval() (int, bool) {
	v := w.swapInterval.Load()
	if v == 0 {
		return 0, false
	}
	return int(v - 1), true
}

func (w *Window) SetTitle(title string) {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	w.Titl = title
	w.Mu.Unlock()
	w.App.Inv.Do(func() {})
}

func (w *Window) SetPosition(pos image.Point) {
	if w.IsClosed() {
		return
	}
	w.App.Inv.Do(func() {
		w.Moved(pos)
	})
}

func (w *Window) SetSize(sz image.Point) {
	if w.IsClosed() {
		return
	}
	w.App.Inv.Do(func() {
		w.Resized(sz)
	})
}

func (w *Window) SetDecorated(decorated bool) {
	if w.IsClosed() {
		return
	}
	w.Mu.Lock()
	w.Deco = decorated
	w.Mu.Unlock()
	w.App.Inv.Do(func() {})
}

func (w *Window) SetState(state system.WindowStates) {
	if w.IsClosed() {
		return
	}
	w.App.Inv.Do(func() {
		if w.SetCachedState(state) {
			w.SendWindowEvent(events.WindowStateChange)
		}
	})
}

func (w *Window) Visible() bool {
	if w.IsClosed() {
		return false
	}
	var vis bool
	w.App.Inv.Do(func() {
		vis = w.visible
	})
	return vis
}

// SetVisible sets the simulated native visibility attribute.
func (w *Window) SetVisible(vis bool) {
	if w.IsClosed() {
		return
	}
	w.App.Inv.Do(func() {
		w.visible = vis
	})
}

func (w *Window) Screen() *system.Screen {
	return w.App.Screen(0)
}

func (w *Window) CloseReq() {
	w.shouldClose.Store(true)
	w.SendWindowEvent(events.WindowClose)
}

func (w *Window) Close() {
	w.Mu.Lock()
	if w.Closed {
		w.Mu.Unlock()
		return
	}
	w.Closed = true
	w.Mu.Unlock()
	w.App.RemoveWindow(w)
}

// Moved simulates a native move notification, updating the cached
// position and sending a [events.WindowMove] event.
func (w *Window) Moved(pos image.Point) {
	w.SetCachedGeom(&pos, nil)
	w.SendWindowEvent(events.WindowMove)
}

// Resized simulates a native resize notification, updating the cached
// size and sending a [events.WindowResize] event.
func (w *Window) Resized(sz image.Point) {
	w.SetCachedGeom(nil, &sz)
	w.SendWindowEvent(events.WindowResize)
}

// FocusChanged simulates a native focus notification.
func (w *Window) FocusChanged(focused bool) {
	w.SetCachedFocus(focused)
	w.SendWindowEvent(events.WindowFocus)
}

// Dropped simulates a native file drop, sending a [events.DropEvent].
func (w *Window) Dropped(files []string) {
	w.Events().Call(events.NewDrop(files))
}
