// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/johnkellyoxford/silk/logx"
	"github.com/johnkellyoxford/silk/system"
)

// MonitorChange is called when a monitor is connected to or
// disconnected from the system.
func (a *App) MonitorChange(monitor *glfw.Monitor, event glfw.PeripheralEvent) {
	logx.PrintDebug("desktop: monitor change", "monitor", monitor.GetName(), "connected", event == glfw.Connected)
	a.GetScreens()
}

// GetScreens gets the current list of screens from glfw.
func (a *App) GetScreens() {
	a.Mu.Lock()
	defer a.Mu.Unlock()

	mons := glfw.GetMonitors()
	a.Screens = make([]*system.Screen, 0, len(mons))
	for i, mon := range mons {
		vm := mon.GetVideoMode()
		if vm.Width == 0 || vm.Height == 0 {
			logx.PrintDebug("desktop: skipping screen with no size", "monitor", mon.GetName())
			continue
		}
		x, y := mon.GetPos()
		pw, ph := mon.GetPhysicalSize()
		cscx, _ := mon.GetContentScale()
		if cscx < 1 {
			cscx = 1
		}
		sz := image.Point{vm.Width, vm.Height}
		sc := &system.Screen{
			ScreenNumber:     i,
			Name:             mon.GetName(),
			Geometry:         image.Rectangle{Min: image.Point{x, y}, Max: image.Point{x, y}.Add(sz)},
			DevicePixelRatio: cscx,
			PhysicalSize:     image.Point{pw, ph},
			Depth:            vm.RedBits + vm.GreenBits + vm.BlueBits,
			RefreshRate:      float32(vm.RefreshRate),
		}
		sc.PixSize = sc.WinSizeToPix(sz)
		sc.UpdatePhysicalDPI()
		a.Screens = append(a.Screens, sc)
	}
}

// screenForPosition returns the screen whose geometry contains the
// given window-manager position, or the first screen if none does.
func (a *App) screenForPosition(pos image.Point) *system.Screen {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	for _, sc := range a.Screens {
		if pos.In(sc.Geometry) {
			return sc
		}
	}
	if len(a.Screens) > 0 {
		return a.Screens[0]
	}
	return nil
}
