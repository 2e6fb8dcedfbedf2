// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncModeText(t *testing.T) {
	for _, sm := range []SyncMode{SyncOff, SyncOn, SyncAdaptive} {
		b, err := sm.MarshalText()
		assert.NoError(t, err)
		var got SyncMode
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, sm, got)
	}

	var sm SyncMode
	assert.Error(t, sm.UnmarshalText([]byte("vsync")))
	assert.Equal(t, "adaptive", SyncAdaptive.String())
	assert.Equal(t, "invalid", SyncMode(99).String())
}
