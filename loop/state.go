// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

// States is the lifecycle state of a [Driver].
type States int32

const (
	// StateNotStarted is the state before [Driver.Run] has been called.
	StateNotStarted States = iota

	// StateRunning is the state while the loop is iterating.
	StateRunning

	// StateClosing is entered when the native should-close signal is
	// observed at the top of an iteration; the loop performs its final
	// cleanup and then stops.
	StateClosing

	// StateStopped is the terminal state after the loop has exited.
	StateStopped

	// StatesN is the number of states.
	StatesN
)

var stateNames = [StatesN]string{"NotStarted", "Running", "Closing", "Stopped"}

func (st States) String() string {
	if st < 0 || st >= StatesN {
		return "StatesInvalid"
	}
	return stateNames[st]
}
