// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/johnkellyoxford/silk/logx"
	"github.com/johnkellyoxford/silk/system/driver/desktop"
	"github.com/johnkellyoxford/silk/system/driver/offscreen"
)

func init() {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		offscreen.Init()
		return
	}
	if err := desktop.Init(); err != nil {
		logx.PrintError("failed to initialize the desktop driver", "err", err)
		os.Exit(1)
	}
}
