// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stopwatch provides a restartable wall-clock stopwatch,
// used by the main loop to measure per-frame elapsed time.
package stopwatch

import "time"

// Stopwatch measures elapsed wall-clock time since it was last
// started or restarted. The zero value must be started with
// [Stopwatch.Start] before [Stopwatch.Elapsed] is meaningful.
// A Stopwatch is not safe for concurrent use; each loop timer
// is owned by exactly one goroutine at a time.
type Stopwatch struct {
	start time.Time

	// now returns the current time; replaceable in tests.
	now func() time.Time
}

// New returns a started Stopwatch.
func New() *Stopwatch {
	sw := &Stopwatch{}
	sw.Start()
	return sw
}

// Start starts (or restarts) the stopwatch at the current time.
func (sw *Stopwatch) Start() {
	if sw.now == nil {
		sw.now = time.Now
	}
	sw.start = sw.now()
}

// Restart resets the elapsed time to zero. It is the same as
// [Stopwatch.Start] and exists for readability at call sites that
// restart a timer every frame.
func (sw *Stopwatch) Restart() {
	sw.Start()
}

// Elapsed returns the time elapsed since the last Start or Restart.
func (sw *Stopwatch) Elapsed() time.Duration {
	if sw.now == nil {
		sw.now = time.Now
	}
	return sw.now().Sub(sw.start)
}

// ElapsedSeconds returns [Stopwatch.Elapsed] in seconds.
func (sw *Stopwatch) ElapsedSeconds() float64 {
	return sw.Elapsed().Seconds()
}
