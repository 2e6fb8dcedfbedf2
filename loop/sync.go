// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import "fmt"

// SyncMode determines how buffer swaps are synchronized with the
// display's vertical refresh.
type SyncMode int32

const (
	// SyncOff disables vertical synchronization; the pacer alone
	// limits the frame rate.
	SyncOff SyncMode = iota

	// SyncOn enables vertical synchronization with an interval of 1.
	// The swap call itself paces the loop, so the pacer does not
	// sleep in this mode.
	SyncOn

	// SyncAdaptive chooses the swap interval each frame based on
	// whether the loop is currently running slowly: interval 0 while
	// behind schedule, interval 1 otherwise.
	SyncAdaptive

	// SyncModesN is the number of sync modes.
	SyncModesN
)

var syncModeNames = [SyncModesN]string{"off", "on", "adaptive"}

func (sm SyncMode) String() string {
	if sm < 0 || sm >= SyncModesN {
		return "invalid"
	}
	return syncModeNames[sm]
}

// MarshalText implements [encoding.TextMarshaler].
func (sm SyncMode) MarshalText() ([]byte, error) {
	return []byte(sm.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (sm *SyncMode) UnmarshalText(text []byte) error {
	for i, nm := range syncModeNames {
		if string(text) == nm {
			*sm = SyncMode(i)
			return nil
		}
	}
	return fmt.Errorf("loop: invalid sync mode %q", text)
}
