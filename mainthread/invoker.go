// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mainthread marshals calls onto the goroutine that owns the
// native window and graphics context. Some platform functions (GLFW
// window manipulation, buffer swapping, swap-interval changes) must
// run on the thread where the context was made current; an [Invoker]
// guarantees that, regardless of which goroutine requests the call,
// while letting same-goroutine callers execute inline with no queuing
// overhead.
//
// The queue is drained exclusively by the loop running on the main
// goroutine (see the loop package); the invoker itself never spawns
// goroutines or drains its own queue.
package mainthread

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SpinYields is the number of [runtime.Gosched] yields a waiting
// caller performs while checking for completion before it parks on
// the item's done channel. The draining side proactively executes
// queued items, so parking cannot starve the drainer; spinning first
// just avoids the parking round-trip for calls that complete within
// a few scheduler quanta. Tune before creating invokers.
var SpinYields = 32

// Invoker marshals calls onto a designated main goroutine.
// The zero value is ready to use.
//
// Before a main goroutine has been designated (i.e., before the loop
// starts), calls execute inline on the caller, matching the fact that
// whichever goroutine is doing setup owns the native state at that
// point.
type Invoker struct {
	q queue

	// main is the id of the designated main goroutine; 0 means none.
	main atomic.Uint64

	// single, when set, makes every call execute inline. It must not
	// change while a loop is running.
	single atomic.Bool

	qinit sync.Once
}

func (inv *Invoker) initQueue() {
	inv.qinit.Do(inv.q.init)
}

// Designate records the calling goroutine as the main goroutine.
// At most one goroutine holds the designation at a time; designating
// while another goroutine holds it panics, since two concurrent main
// goroutines would both touch thread-affine native state.
// The designation may be reassigned after [Invoker.Release].
func (inv *Invoker) Designate() {
	inv.initQueue()
	id := goid()
	if !inv.main.CompareAndSwap(0, id) && inv.main.Load() != id {
		panic("mainthread: main goroutine already designated")
	}
}

// Release clears the main designation set by [Invoker.Designate].
func (inv *Invoker) Release() {
	inv.main.Store(0)
}

// IsMain reports whether the calling goroutine is the designated
// main goroutine.
func (inv *Invoker) IsMain() bool {
	return inv.main.Load() == goid()
}

// SetSingleThreaded sets whether every call executes inline on the
// caller. This must only be changed while no loop is running.
func (inv *Invoker) SetSingleThreaded(single bool) {
	inv.single.Store(single)
}

// SingleThreaded reports whether the invoker executes everything inline.
func (inv *Invoker) SingleThreaded() bool {
	return inv.single.Load()
}

// Do runs f on the main goroutine and returns once it has completed.
//
// If the caller already is the main goroutine, or the invoker is in
// single-threaded mode, or no main goroutine has been designated yet,
// f runs synchronously in place with no queue involvement. Otherwise
// f is wrapped in a [WorkItem], appended to the queue, and the caller
// waits (yield-spin, then a channel wait) until the drainer has
// executed it.
//
// A panic inside f is captured on the executing side and re-panicked
// on the calling goroutine as a [*PanicError]; it is never swallowed
// and never raised on the executing side only.
func (inv *Invoker) Do(f func()) {
	if inv.single.Load() {
		f()
		return
	}
	main := inv.main.Load()
	if main == 0 || main == goid() {
		f()
		return
	}

	it := newWorkItem(f)
	inv.q.push(it)
	for i := 0; i < SpinYields; i++ {
		if it.completed() {
			break
		}
		runtime.Gosched()
	}
	if !it.completed() {
		<-it.done
	}
	if it.panicVal != nil {
		panic(&PanicError{Value: it.panicVal, Stack: it.stack})
	}
}

// DoErr runs f on the main goroutine like [Invoker.Do] and returns
// the error it produced.
func (inv *Invoker) DoErr(f func() error) error {
	var err error
	inv.Do(func() {
		err = f()
	})
	return err
}

// Call runs f on the main goroutine of the given invoker and returns
// its result and error. It is the typed-result form of [Invoker.Do].
func Call[T any](inv *Invoker, f func() (T, error)) (T, error) {
	var (
		res T
		err error
	)
	inv.Do(func() {
		res, err = f()
	})
	return res, err
}

// RunOne pops and executes one queued work item on the calling
// goroutine, returning whether an item was executed. It must only be
// called by the designated main goroutine (loop drain step). A panic
// inside the item is captured for the waiting caller and does not
// propagate here, so draining never terminates the loop.
func (inv *Invoker) RunOne() bool {
	inv.initQueue()
	it := inv.q.pop()
	if it == nil {
		return false
	}
	it.run()
	return true
}

// Drain executes queued work items until the queue is empty,
// returning the number executed.
func (inv *Invoker) Drain() int {
	n := 0
	for inv.RunOne() {
		n++
	}
	return n
}

// QueueLen returns the number of work items currently queued.
func (inv *Invoker) QueueLen() int {
	inv.initQueue()
	return inv.q.length()
}
