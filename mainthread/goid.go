// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mainthread

import "runtime"

// goid returns the id of the calling goroutine, parsed from the
// header line of [runtime.Stack] output ("goroutine 123 [running]:").
// There is no public API for this, but the header format has been
// stable across every Go release and this is the standard technique.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	const prefix = len("goroutine ")
	id := uint64(0)
	for _, c := range buf[prefix:n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
