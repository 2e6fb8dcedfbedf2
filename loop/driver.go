// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loop runs the main window loop: poll events, update,
// render, swap, once per iteration, with frame pacing and optional
// concurrent update logic.
//
// The loop owns the main-goroutine designation of its
// [mainthread.Invoker] for the duration of [Driver.Run]. While the
// update step runs on a worker goroutine, the main goroutine drains
// the invoker's queue, so update code can freely call back into
// main-thread-only operations without deadlocking.
package loop

import (
	"errors"
	"runtime"
	"runtime/debug"
	"sync/atomic"

	"github.com/johnkellyoxford/silk/base/stopwatch"
	"github.com/johnkellyoxford/silk/logx"
	"github.com/johnkellyoxford/silk/mainthread"
)

// ErrAlreadyRunning is returned by [Driver.Run] if the loop has
// already been started; a Driver runs at most once.
var ErrAlreadyRunning = errors.New("loop: driver already running or stopped")

// Surface is the narrow slice of a native window that the loop
// needs. All of its methods are thread-affine: the loop only calls
// them on the main goroutine.
type Surface interface {
	// PollEvents polls and dispatches pending native platform events.
	PollEvents()

	// ShouldClose reports whether the native close signal is set.
	// It is observed once per iteration, at the top; a close request
	// does not interrupt an in-flight update/render pair.
	ShouldClose() bool

	// SwapBuffers presents the rendered frame.
	SwapBuffers()

	// SetSwapInterval sets the buffer-swap interval (0 = immediate,
	// 1 = wait for one vertical refresh).
	SetSwapInterval(interval int)
}

// Driver orchestrates the main loop over a [Surface]. Configure the
// exported fields before calling [Driver.Run]; SingleThreaded is
// immutable once running, while rates, tolerance, and sync mode may
// be changed at any time.
type Driver struct {

	// Surface is the native window surface the loop drives.
	Surface Surface

	// Invoker marshals thread-affine calls onto this loop.
	Invoker *mainthread.Invoker

	// Pacer holds the target rates and slow-frame tracking.
	Pacer Pacer

	// OnLoad is called once, after the loop has started but before
	// the first iteration.
	OnLoad func()

	// OnUpdate is called every update frame with the elapsed seconds
	// since the previous update frame.
	OnUpdate func(dt float64)

	// OnRender is called every render frame with the elapsed seconds
	// since the previous render frame.
	OnRender func(dt float64)

	// SingleThreaded makes update and render run sequentially on the
	// main goroutine instead of running update on a worker. It must
	// not be changed while the loop is running, since it gates which
	// code path each iteration uses.
	SingleThreaded bool

	sync  atomic.Int32
	state atomic.Int32

	update stopwatch.Stopwatch
	render stopwatch.Stopwatch

	wasSlow bool
}

// NewDriver returns a Driver for the given surface and invoker.
func NewDriver(surf Surface, inv *mainthread.Invoker) *Driver {
	return &Driver{Surface: surf, Invoker: inv}
}

// State returns the current lifecycle state. It may be called from
// any goroutine.
func (d *Driver) State() States {
	return States(d.state.Load())
}

// Sync returns the current synchronization mode.
func (d *Driver) Sync() SyncMode {
	return SyncMode(d.sync.Load())
}

// SetSync sets the synchronization mode. If the loop is running, the
// new swap interval is applied on the main goroutine through the
// invoker; otherwise it takes effect when the loop starts.
func (d *Driver) SetSync(mode SyncMode) {
	d.sync.Store(int32(mode))
	if d.State() == StateRunning {
		d.Invoker.Do(d.applySwapInterval)
	}
}

// SetUpdatesPerSecond sets the target update rate; non-positive
// means uncapped. Safe to call while the loop is running.
func (d *Driver) SetUpdatesPerSecond(hz float64) {
	d.Pacer.SetUpdateRate(hz)
}

// SetFramesPerSecond sets the target render rate; non-positive
// means uncapped. Safe to call while the loop is running.
func (d *Driver) SetFramesPerSecond(hz float64) {
	d.Pacer.SetRenderRate(hz)
}

// applySwapInterval applies the swap interval implied by the current
// sync mode. Must run on the goroutine owning the graphics context.
func (d *Driver) applySwapInterval() {
	switch d.Sync() {
	case SyncOff:
		d.Surface.SetSwapInterval(0)
	case SyncOn:
		d.Surface.SetSwapInterval(1)
	case SyncAdaptive:
		if d.Pacer.RunningSlowly() {
			d.Surface.SetSwapInterval(0)
		} else {
			d.Surface.SetSwapInterval(1)
		}
	}
}

// Run runs the main loop on the calling goroutine until the
// surface's close signal is observed. The calling goroutine becomes
// the designated main goroutine for the invoker; callers that need
// OS-thread affinity (GLFW does) must have locked the thread first.
//
// A panic in OnLoad, OnUpdate, or OnRender propagates out of Run and
// terminates the loop; a panic inside marshaled work is handed back
// to the goroutine that requested it and does not terminate the loop.
func (d *Driver) Run() error {
	if !d.state.CompareAndSwap(int32(StateNotStarted), int32(StateRunning)) {
		return ErrAlreadyRunning
	}
	defer d.state.Store(int32(StateStopped))

	inv := d.Invoker
	inv.SetSingleThreaded(d.SingleThreaded)
	inv.Designate()
	defer inv.Release()

	logx.PrintDebug("loop: starting", "sync", d.Sync().String(), "singleThreaded", d.SingleThreaded)

	if d.OnLoad != nil {
		d.OnLoad()
	}
	d.applySwapInterval()
	d.update.Restart()
	d.render.Restart()

	for {
		if d.Surface.ShouldClose() {
			d.state.Store(int32(StateClosing))
			break
		}
		d.Surface.PollEvents()

		if d.SingleThreaded {
			d.updateStep()
		} else {
			d.runUpdateWorker()
		}
		d.renderStep()

		if d.Sync() == SyncAdaptive {
			// applied here in addition to the render step so the
			// interval is set even if render logic changed the
			// slow state
			d.applySwapInterval()
		}
		d.noteSlow()
	}

	// work enqueued during the final iteration still completes
	inv.Drain()
	logx.PrintDebug("loop: stopped")
	return nil
}

// runUpdateWorker launches the update step on a worker goroutine and
// drains the invoker's queue on the main goroutine until the worker
// finishes. Work enqueued by the update step is therefore executed
// before this frame's render step begins.
func (d *Driver) runUpdateWorker() {
	var (
		panicVal   any
		panicStack []byte
	)
	done := make(chan struct{})
	go func() {
		defer func() {
			if r := recover(); r != nil {
				panicVal = r
				panicStack = debug.Stack()
			}
			close(done)
		}()
		d.updateStep()
	}()

waiting:
	for {
		select {
		case <-done:
			break waiting
		default:
			if !d.Invoker.RunOne() {
				runtime.Gosched()
			}
		}
	}
	d.Invoker.Drain()

	if panicVal != nil {
		logx.PrintError("loop: update callback panicked", "value", panicVal, "stack", string(panicStack))
		panic(panicVal)
	}
}

// updateStep paces, runs the user update callback with the elapsed
// delta, and restarts the update timer. In multi-threaded mode it
// runs on the update worker, so any pacing sleep happens off the
// main goroutine.
func (d *Driver) updateStep() {
	d.Pacer.PaceUpdate(d.update.ElapsedSeconds(), d.Sync())
	dt := d.update.ElapsedSeconds()
	if d.OnUpdate != nil {
		d.OnUpdate(dt)
	}
	d.update.Restart()
}

// renderStep paces, runs the user render callback with the elapsed
// delta, restarts the render timer, and swaps buffers. Always on the
// main goroutine.
func (d *Driver) renderStep() {
	d.Pacer.PaceRender(d.render.ElapsedSeconds(), d.Sync())
	dt := d.render.ElapsedSeconds()
	if d.OnRender != nil {
		d.OnRender(dt)
	}
	d.render.Restart()
	if d.Sync() == SyncAdaptive {
		d.applySwapInterval()
	}
	d.Surface.SwapBuffers()
}

// noteSlow logs transitions in and out of the running-slowly state.
func (d *Driver) noteSlow() {
	slow := d.Pacer.RunningSlowly()
	if slow != d.wasSlow {
		if slow {
			logx.PrintDebug("loop: running slowly")
		} else {
			logx.PrintDebug("loop: recovered from running slowly")
		}
		d.wasSlow = slow
	}
}
