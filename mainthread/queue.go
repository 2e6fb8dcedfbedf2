// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mainthread

import (
	"sync"
	"sync/atomic"
)

// queue is a lock-free FIFO freelist-based queue of work items.
// It must be initialized using [queue.init] before use.
// It is based on https://github.com/fyne-io/fyne/blob/master/internal/async/queue_canvasobject.go
//
// Many producer goroutines may push concurrently; items are popped
// by the single goroutine draining the invoker, so no two consumers
// ever dequeue the same item.
type queue struct {
	head atomic.Pointer[queueNode]
	tail atomic.Pointer[queueNode]
	len  atomic.Int64
}

func (q *queue) init() {
	head := &queueNode{}
	q.head.Store(head)
	q.tail.Store(head)
}

type queueNode struct {
	next atomic.Pointer[queueNode]
	v    *WorkItem
}

var queueNodePool = sync.Pool{
	New: func() any { return &queueNode{} },
}

// pop removes and returns the next work item in the queue.
// It returns nil if the queue is empty.
func (q *queue) pop() *WorkItem {
	var first, last, firstnext *queueNode
	for {
		first = q.head.Load()
		last = q.tail.Load()
		firstnext = first.next.Load()
		if first == q.head.Load() {
			if first == last {
				if firstnext == nil {
					return nil
				}

				q.tail.CompareAndSwap(last, firstnext)
			} else {
				v := firstnext.v
				if q.head.CompareAndSwap(first, firstnext) {
					q.len.Add(-1)
					first.v = nil
					queueNodePool.Put(first)
					return v
				}
			}
		}
	}
}

// push adds a work item to the end of the queue.
func (q *queue) push(it *WorkItem) {
	i := queueNodePool.Get().(*queueNode)
	i.next.Store(nil)
	i.v = it

	var last, lastnext *queueNode
	for {
		last = q.tail.Load()
		lastnext = last.next.Load()
		if q.tail.Load() == last {
			if lastnext == nil {
				if last.next.CompareAndSwap(lastnext, i) {
					q.tail.CompareAndSwap(last, i)
					q.len.Add(1)
					return
				}
			} else {
				q.tail.CompareAndSwap(last, lastnext)
			}
		}
	}
}

// length returns the number of items currently queued.
func (q *queue) length() int {
	return int(q.len.Load())
}
