// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// sleepRecorder replaces the pacer's sleep with a recording stub.
func sleepRecorder(p *Pacer) *[]time.Duration {
	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }
	return &slept
}

func TestPacerUpdateOnTime(t *testing.T) {
	p := &Pacer{}
	slept := sleepRecorder(p)
	p.SetUpdateRate(60)

	p.PaceUpdate(1.0/120, SyncOff) // used half the period
	assert.Len(t, *slept, 1)
	assert.InDelta(t, float64(time.Second)/120, float64((*slept)[0]), float64(time.Millisecond))
	assert.False(t, p.RunningSlowly())
}

func TestPacerUpdateMisses(t *testing.T) {
	p := &Pacer{}
	slept := sleepRecorder(p)
	p.SetUpdateRate(60)

	// consecutive misses strictly increase the counter, no sleeping
	for i := 1; i <= 3; i++ {
		p.PaceUpdate(1.0/30, SyncOff)
		assert.Equal(t, int32(i), p.misses.Load())
	}
	assert.Empty(t, *slept)
	assert.True(t, p.RunningSlowly())

	// one on-time frame resets the counter
	p.PaceUpdate(1.0/120, SyncOff)
	assert.Equal(t, int32(0), p.misses.Load())
	assert.False(t, p.RunningSlowly())
	assert.Len(t, *slept, 1)
}

func TestPacerTolerance(t *testing.T) {
	p := &Pacer{}
	sleepRecorder(p)
	p.SetUpdateRate(60)
	p.SetTolerance(2)

	p.PaceUpdate(1.0/30, SyncOff)
	p.PaceUpdate(1.0/30, SyncOff)
	assert.False(t, p.RunningSlowly(), "within tolerance")
	p.PaceUpdate(1.0/30, SyncOff)
	assert.True(t, p.RunningSlowly(), "tolerance exceeded")
}

func TestPacerUncapped(t *testing.T) {
	p := &Pacer{}
	slept := sleepRecorder(p)

	p.SetUpdateRate(0)
	p.PaceUpdate(5, SyncOff)
	assert.Empty(t, *slept)
	assert.Equal(t, int32(0), p.misses.Load(), "uncapped frames are never misses")

	p.SetUpdateRate(-30)
	assert.Equal(t, 0.0, p.UpdatePeriod(), "non-positive rate means uncapped")
}

func TestPacerSyncOnTrustsSwap(t *testing.T) {
	p := &Pacer{}
	slept := sleepRecorder(p)
	p.SetUpdateRate(60)
	p.SetRenderRate(60)

	p.PaceUpdate(1.0/120, SyncOn)
	p.PaceRender(1.0/120, SyncOn)
	assert.Empty(t, *slept, "vsync-on paces the loop itself")
	assert.Equal(t, int32(0), p.misses.Load())
}

func TestPacerAdaptiveGate(t *testing.T) {
	p := &Pacer{}
	slept := sleepRecorder(p)
	p.SetUpdateRate(60)

	// not slow: adaptive leaves pacing to the swap interval
	p.PaceUpdate(1.0/120, SyncAdaptive)
	assert.Empty(t, *slept)

	// force the slow state, then adaptive paces like sync-off
	p.misses.Store(1)
	p.PaceUpdate(1.0/120, SyncAdaptive)
	assert.Len(t, *slept, 1)
	assert.False(t, p.RunningSlowly(), "on-time adaptive frame resets the counter")
}

func TestPacerRenderNeverCountsSlow(t *testing.T) {
	p := &Pacer{}
	slept := sleepRecorder(p)
	p.SetRenderRate(60)

	p.PaceRender(1.0/30, SyncOff) // missed deadline
	assert.Empty(t, *slept)
	assert.Equal(t, int32(0), p.misses.Load())

	p.PaceRender(1.0/120, SyncOff)
	assert.Len(t, *slept, 1)
}
