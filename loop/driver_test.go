// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnkellyoxford/silk/mainthread"
)

// testSurface is an in-memory Surface recording the calls the loop
// makes against it.
type testSurface struct {
	mu        sync.Mutex
	polls     int
	swaps     int
	intervals []int
	closing   atomic.Bool

	// pollDelay simulates slow native event dispatch.
	pollDelay time.Duration
}

func (s *testSurface) PollEvents() {
	s.mu.Lock()
	s.polls++
	d := s.pollDelay
	s.mu.Unlock()
	if d > 0 {
		time.Sleep(d)
	}
}

func (s *testSurface) ShouldClose() bool { return s.closing.Load() }

func (s *testSurface) SwapBuffers() {
	s.mu.Lock()
	s.swaps++
	s.mu.Unlock()
}

func (s *testSurface) SetSwapInterval(interval int) {
	s.mu.Lock()
	s.intervals = append(s.intervals, interval)
	s.mu.Unlock()
}

func (s *testSurface) lastInterval() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.intervals) == 0 {
		return -1
	}
	return s.intervals[len(s.intervals)-1]
}

func TestDriverStateMachine(t *testing.T) {
	surf := &testSurface{}
	d := NewDriver(surf, &mainthread.Invoker{})
	assert.Equal(t, StateNotStarted, d.State())

	loaded := false
	d.OnLoad = func() {
		loaded = true
		assert.Equal(t, StateRunning, d.State())
	}
	d.OnUpdate = func(dt float64) { surf.closing.Store(true) }

	require.NoError(t, d.Run())
	assert.True(t, loaded)
	assert.Equal(t, StateStopped, d.State())

	// terminal: a driver runs at most once
	assert.ErrorIs(t, d.Run(), ErrAlreadyRunning)
}

func TestDriverIterationOrder(t *testing.T) {
	surf := &testSurface{}
	d := NewDriver(surf, &mainthread.Invoker{})
	d.SingleThreaded = true

	var trace []string
	d.OnUpdate = func(dt float64) {
		trace = append(trace, "update")
		surf.closing.Store(true)
	}
	d.OnRender = func(dt float64) { trace = append(trace, "render") }

	require.NoError(t, d.Run())
	assert.Equal(t, []string{"update", "render"}, trace)
	assert.Equal(t, 1, surf.polls)
	assert.Equal(t, 1, surf.swaps)
}

func TestDriverEndToEnd(t *testing.T) {
	// update rate 60, render uncapped, sync off, multi-threaded:
	// exactly 10 updates, paced deltas, and marshaled calls from the
	// update worker never deadlock the loop.
	surf := &testSurface{}
	inv := &mainthread.Invoker{}
	d := NewDriver(surf, inv)
	d.SetSync(SyncOff)
	d.SetUpdatesPerSecond(60)
	d.SetFramesPerSecond(0)

	var (
		deltas    []float64
		fromMain  int
		updateN   int
		pending   atomic.Bool
		orderOK   = true
		rendersOK = true
	)
	d.OnUpdate = func(dt float64) {
		updateN++
		deltas = append(deltas, dt)
		pending.Store(true)
		inv.Do(func() {
			// executes on the main goroutine during the drain wait
			if !inv.IsMain() {
				orderOK = false
			}
			fromMain++
			pending.Store(false)
		})
		if updateN >= 10 {
			surf.closing.Store(true)
		}
	}
	d.OnRender = func(dt float64) {
		// work enqueued by this frame's update completed before render
		if pending.Load() {
			rendersOK = false
		}
	}

	require.NoError(t, d.Run())

	assert.Equal(t, 10, updateN)
	assert.Equal(t, 10, fromMain)
	assert.True(t, orderOK, "marshaled work must run on the main goroutine")
	assert.True(t, rendersOK, "marshaled work must complete before render")

	sum := 0.0
	for _, dt := range deltas {
		// each paced frame takes at least the target period,
		// within scheduler tolerance
		assert.GreaterOrEqual(t, dt, 1.0/60-0.002)
		sum += dt
	}
	assert.GreaterOrEqual(t, sum, 10.0/60-0.01)
	assert.Less(t, sum, 0.5, "10 ticks at 60Hz should take well under half a second")
}

func TestDriverAdaptiveSlowInterval(t *testing.T) {
	surf := &testSurface{}
	d := NewDriver(surf, &mainthread.Invoker{})
	d.SingleThreaded = true
	d.SetSync(SyncAdaptive)
	d.SetUpdatesPerSecond(1000)
	// force the slow state; every pace point then sees elapsed time
	// past the 1ms deadline, so the loop stays slow
	d.Pacer.misses.Store(1)
	surf.pollDelay = 5 * time.Millisecond

	n := 0
	d.OnUpdate = func(dt float64) {
		time.Sleep(5 * time.Millisecond)
		n++
		if n >= 3 {
			surf.closing.Store(true)
		}
	}
	require.NoError(t, d.Run())

	assert.True(t, d.Pacer.RunningSlowly())
	assert.Equal(t, 0, surf.lastInterval(), "running slowly forces the off interval")

	// the interval is applied both inside the render step and after
	// it in the driver loop
	surf.mu.Lock()
	zeros := 0
	for _, iv := range surf.intervals {
		if iv == 0 {
			zeros++
		}
	}
	surf.mu.Unlock()
	assert.GreaterOrEqual(t, zeros, 2)
}

func TestDriverAdaptiveRecoveredInterval(t *testing.T) {
	surf := &testSurface{}
	d := NewDriver(surf, &mainthread.Invoker{})
	d.SingleThreaded = true
	d.SetSync(SyncAdaptive)
	d.SetUpdatesPerSecond(0) // uncapped: never slow

	n := 0
	d.OnUpdate = func(dt float64) {
		n++
		if n >= 3 {
			surf.closing.Store(true)
		}
	}
	require.NoError(t, d.Run())

	assert.False(t, d.Pacer.RunningSlowly())
	assert.Equal(t, 1, surf.lastInterval(), "not slow yields the on interval")
}

func TestDriverSyncOnInitialInterval(t *testing.T) {
	surf := &testSurface{}
	d := NewDriver(surf, &mainthread.Invoker{})
	d.SingleThreaded = true
	d.SetSync(SyncOn)
	d.OnUpdate = func(dt float64) { surf.closing.Store(true) }

	require.NoError(t, d.Run())
	require.NotEmpty(t, surf.intervals)
	assert.Equal(t, 1, surf.intervals[0], "sync-on applies interval 1 at start")
}

func TestDriverUpdatePanicTerminates(t *testing.T) {
	surf := &testSurface{}
	d := NewDriver(surf, &mainthread.Invoker{})

	renders := 0
	d.OnUpdate = func(dt float64) { panic("corrupted update") }
	d.OnRender = func(dt float64) { renders++ }

	assert.PanicsWithValue(t, "corrupted update", func() { _ = d.Run() })
	assert.Equal(t, StateStopped, d.State())
	assert.Equal(t, 0, renders, "no render after a failed update")
}

func TestDriverMarshaledFailureDoesNotTerminate(t *testing.T) {
	surf := &testSurface{}
	inv := &mainthread.Invoker{}
	d := NewDriver(surf, inv)

	n := 0
	var recovered atomic.Value
	d.OnUpdate = func(dt float64) {
		n++
		if n == 1 {
			func() {
				defer func() { recovered.Store(recover()) }()
				inv.Do(func() { panic("native failure") })
			}()
		}
		if n >= 3 {
			surf.closing.Store(true)
		}
	}

	require.NoError(t, d.Run())
	assert.Equal(t, 3, n, "the loop survives failures in marshaled work")
	pe, ok := recovered.Load().(*mainthread.PanicError)
	require.True(t, ok)
	assert.Equal(t, "native failure", pe.Value)
}

func TestDriverSetSyncWhileStopped(t *testing.T) {
	d := NewDriver(&testSurface{}, &mainthread.Invoker{})
	d.SetSync(SyncAdaptive)
	assert.Equal(t, SyncAdaptive, d.Sync())
}
