// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"image"

	"github.com/chewxy/math32"
)

// Screen contains data about each physical or logical screen.
type Screen struct {
	// ScreenNumber is the index of this screen in the list of
	// screens maintained under the app.
	ScreenNumber int

	// Name is the name of the screen, from the monitor.
	Name string

	// Geometry contains the geometry of the screen in window-manager
	// coordinates: the bounds of the screen within the overall
	// virtual desktop.
	Geometry image.Rectangle

	// PixSize is the size of the screen in raw underlying pixels.
	PixSize image.Point

	// PhysicalSize is the actual physical size of the screen,
	// in millimeters.
	PhysicalSize image.Point

	// DevicePixelRatio is a factor that scales the screen's
	// "natural" pixel coordinates into actual device pixels.
	// On OS-X, it is backingScaleFactor = 2.0 on "retina".
	DevicePixelRatio float32

	// PhysicalDPI is the physical dots per inch of the screen,
	// for generating true-to-physical-size output. It is computed
	// as 25.4 * (PixSize.X / PhysicalSize.X) where 25.4 is the
	// number of mm per inch.
	PhysicalDPI float32

	// RefreshRate is the monitor refresh rate, in Hz.
	RefreshRate float32

	// Depth is the color depth of the screen, in bits.
	Depth int
}

// DPIFromPhysical computes the physical DPI for the given pixel and
// physical (mm) extents, guarding against a zero physical size.
func DPIFromPhysical(pixels, mm int) float32 {
	if mm == 0 {
		return 96
	}
	return 25.4 * float32(pixels) / float32(mm)
}

// UpdatePhysicalDPI recomputes PhysicalDPI from PixSize and
// PhysicalSize.
func (sc *Screen) UpdatePhysicalDPI() {
	dpi := DPIFromPhysical(sc.PixSize.X, sc.PhysicalSize.X)
	if math32.IsNaN(dpi) || math32.IsInf(dpi, 0) {
		dpi = 96
	}
	sc.PhysicalDPI = dpi
}

// WinSizeToPix returns the window-manager size converted to
// underlying pixel units, using DevicePixelRatio.
func (sc *Screen) WinSizeToPix(sz image.Point) image.Point {
	var psz image.Point
	psz.X = int(math32.Round(float32(sz.X) * sc.DevicePixelRatio))
	psz.Y = int(math32.Round(float32(sz.Y) * sc.DevicePixelRatio))
	return psz
}

// PixToWinSize returns the underlying pixel size converted to
// window-manager units, using DevicePixelRatio.
func (sc *Screen) PixToWinSize(sz image.Point) image.Point {
	if sc.DevicePixelRatio == 0 {
		return sz
	}
	var wsz image.Point
	wsz.X = int(math32.Round(float32(sz.X) / sc.DevicePixelRatio))
	wsz.Y = int(math32.Round(float32(sz.Y) / sc.DevicePixelRatio))
	return wsz
}
