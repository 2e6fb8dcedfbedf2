// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mainthread

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

// Work item states. An item moves Enqueued -> Executing -> Completed
// exactly once; any other transition is an invariant violation.
const (
	itemEnqueued int32 = iota + 1
	itemExecuting
	itemCompleted
)

// WorkItem is a deferred unit of work awaiting execution on the main
// goroutine. It is owned exclusively by the invoker from enqueue until
// the caller observes completion; only the executing goroutine touches
// it in between.
type WorkItem struct {
	fn func()

	// state is the lifecycle state word, one of the item* constants.
	state atomic.Int32

	// done is closed when execution has finished and the results
	// below are safe to read.
	done chan struct{}

	// panicVal is the recovered panic value from fn, if any.
	panicVal any

	// stack is the executing-side stack captured with the panic.
	stack []byte
}

func newWorkItem(fn func()) *WorkItem {
	it := &WorkItem{fn: fn, done: make(chan struct{})}
	it.state.Store(itemEnqueued)
	return it
}

// run executes the item's function, capturing any panic so it can be
// re-raised on the calling goroutine. It panics if the item has
// already been executed, since that must never occur by construction.
func (it *WorkItem) run() {
	if !it.state.CompareAndSwap(itemEnqueued, itemExecuting) {
		panic(fmt.Sprintf("mainthread: work item executed twice (state %d)", it.state.Load()))
	}
	defer func() {
		if r := recover(); r != nil {
			it.panicVal = r
			it.stack = debug.Stack()
		}
		it.state.Store(itemCompleted)
		close(it.done)
	}()
	it.fn()
}

// completed reports whether execution has finished.
func (it *WorkItem) completed() bool {
	return it.state.Load() == itemCompleted
}

// PanicError wraps a panic that occurred inside a function marshaled
// to the main goroutine. It is re-panicked on the goroutine that
// requested the call, preserving the original value and the stack
// of the executing side.
type PanicError struct {
	// Value is the original value passed to panic.
	Value any

	// Stack is the stack trace of the executing goroutine,
	// captured at the point of the panic.
	Stack []byte
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("mainthread: panic in marshaled call: %v", p.Value)
}
