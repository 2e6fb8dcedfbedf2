// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"math"
	"sync/atomic"
	"time"
)

// Pacer decides, once per loop iteration, how long the update and
// render steps sleep to hold their target rates, and whether the
// update side is currently running behind schedule.
//
// The target periods and the tolerance may be changed from any
// goroutine (they are read every frame by the loop); the slow-frame
// counter is only touched by whichever goroutine is running the
// update step.
type Pacer struct {
	// updatePeriod and renderPeriod are target seconds per frame as
	// float64 bits; 0 means uncapped.
	updatePeriod atomic.Uint64
	renderPeriod atomic.Uint64

	// tolerance is the number of consecutive missed update deadlines
	// beyond which the loop is considered to be running slowly.
	tolerance atomic.Int32

	// misses counts consecutive update frames that missed their
	// deadline; reset to zero by every on-time frame.
	misses atomic.Int32

	// sleep is replaceable in tests; nil means time.Sleep.
	sleep func(d time.Duration)
}

func (p *Pacer) doSleep(seconds float64) {
	d := time.Duration(seconds * float64(time.Second))
	if p.sleep != nil {
		p.sleep(d)
		return
	}
	time.Sleep(d)
}

// SetUpdateRate sets the target update rate in frames per second.
// Non-positive means uncapped.
func (p *Pacer) SetUpdateRate(hz float64) {
	p.updatePeriod.Store(math.Float64bits(periodFor(hz)))
}

// SetRenderRate sets the target render rate in frames per second.
// Non-positive means uncapped.
func (p *Pacer) SetRenderRate(hz float64) {
	p.renderPeriod.Store(math.Float64bits(periodFor(hz)))
}

// UpdatePeriod returns the target update period in seconds per
// frame; 0 means uncapped.
func (p *Pacer) UpdatePeriod() float64 {
	return math.Float64frombits(p.updatePeriod.Load())
}

// RenderPeriod returns the target render period in seconds per
// frame; 0 means uncapped.
func (p *Pacer) RenderPeriod() float64 {
	return math.Float64frombits(p.renderPeriod.Load())
}

// SetTolerance sets how many consecutive missed update deadlines are
// tolerated before [Pacer.RunningSlowly] reports true. The default of
// zero means any single miss already counts as running slowly.
func (p *Pacer) SetTolerance(n int) {
	p.tolerance.Store(int32(n))
}

// RunningSlowly reports whether the number of consecutive missed
// update deadlines exceeds the configured tolerance.
func (p *Pacer) RunningSlowly() bool {
	return p.misses.Load() > p.tolerance.Load()
}

// applies reports whether pacing is in effect for the given period
// and sync mode. Explicit vsync-on intervals are trusted to pace the
// loop themselves, so the pacer only sleeps when sync is off, or when
// sync is adaptive and the swap interval is currently 0 because the
// loop is behind.
func (p *Pacer) applies(period float64, mode SyncMode) bool {
	return period > 0 && (mode == SyncOff || (mode == SyncAdaptive && p.RunningSlowly()))
}

// PaceUpdate applies pacing for the update step, given the elapsed
// seconds since the update timer was last restarted. A missed
// deadline increments the consecutive-miss counter without sleeping;
// an on-time frame sleeps off the remainder of the period and resets
// the counter.
func (p *Pacer) PaceUpdate(elapsed float64, mode SyncMode) {
	period := p.UpdatePeriod()
	if !p.applies(period, mode) {
		return
	}
	sleepTime := period - elapsed
	if sleepTime < 0 {
		p.misses.Add(1)
		return
	}
	p.doSleep(sleepTime)
	p.misses.Store(0)
}

// PaceRender applies pacing for the render step, given the elapsed
// seconds since the render timer was last restarted. The render path
// does not accumulate the slow counter: update (game logic, physics)
// is the side whose health drives adaptive sync.
func (p *Pacer) PaceRender(elapsed float64, mode SyncMode) {
	period := p.RenderPeriod()
	if !p.applies(period, mode) {
		return
	}
	sleepTime := period - elapsed
	if sleepTime < 0 {
		return
	}
	p.doSleep(sleepTime)
}

// periodFor converts a rate in frames per second to a period in
// seconds per frame, mapping non-positive rates to 0 (uncapped).
func periodFor(hz float64) float64 {
	if hz <= 0 {
		return 0
	}
	return 1 / hz
}
