// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver initializes the appropriate driver implementation of
// the system interfaces for the platform being built for. Importing it
// for side effects sets [system.TheApp].
package driver
