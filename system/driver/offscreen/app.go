// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides headless implementations of the system
// interfaces, for offscreen testing of apps without a display.
package offscreen

import (
	"image"

	"github.com/johnkellyoxford/silk/system"
	"github.com/johnkellyoxford/silk/system/driver/base"
)

// TheApp is the single [system.App] for the offscreen platform.
var TheApp = &App{}

var _ system.App = TheApp

// App is the [system.App] implementation for the offscreen platform.
type App struct {
	base.AppMulti[*Window]
}

// Init installs TheApp as [system.TheApp], with one plausible
// default screen.
func Init() {
	TheApp.Mu.Lock()
	TheApp.Screens = []*system.Screen{
		{
			Name:             "offscreen",
			Geometry:         image.Rectangle{Max: image.Point{1920, 1080}},
			PixSize:          image.Point{1920, 1080},
			PhysicalSize:     image.Point{510, 290},
			DevicePixelRatio: 1,
			RefreshRate:      60,
			Depth:            24,
		},
	}
	TheApp.Screens[0].UpdatePhysicalDPI()
	TheApp.Mu.Unlock()
	system.TheApp = TheApp
}

func (a *App) Platform() system.Platforms {
	return system.Offscreen
}

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()

	w := &Window{visible: true}
	w.App = a
	w.Nm = opts.GetTitle()
	w.Titl = opts.GetTitle()
	w.Pos = opts.Pos
	w.Sz = opts.Size
	w.Deco = opts.Decorated
	w.Stat = opts.StartState()
	a.AddWindow(w)
	return w, nil
}

func (a *App) Quit() {
	a.Mu.Lock()
	a.Quitting = true
	wins := make([]*Window, len(a.Windows))
	copy(wins, a.Windows)
	a.Mu.Unlock()

	for _, w := range wins {
		w.Close()
	}
}
