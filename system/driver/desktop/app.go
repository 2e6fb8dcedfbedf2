// Copyright (c) 2026, The Silk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the system interfaces on desktop
// platforms through GLFW. All thread-affine GLFW calls are marshaled
// through the app's invoker, so the package can be used from any
// goroutine once [Init] has run on the main OS thread.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/johnkellyoxford/silk/logx"
	"github.com/johnkellyoxford/silk/system"
	"github.com/johnkellyoxford/silk/system/driver/base"
)

func init() {
	// GLFW requires window and context calls on the thread that
	// initialized it
	runtime.LockOSThread()
}

// TheApp is the single [system.App] for the desktop platform.
var TheApp = &App{Handles: map[*glfw.Window]*Window{}}

var _ system.App = TheApp

// App is the [system.App] implementation for the desktop platform.
type App struct {
	base.AppMulti[*Window]

	// Handles is the registry mapping native window handles to their
	// windows. It is owned by the app: entries are inserted when a
	// window is created and removed when it is destroyed.
	// Protected by Mu.
	Handles map[*glfw.Window]*Window
}

// Init initializes GLFW and the screens, and installs TheApp as
// [system.TheApp]. It must be called on the main OS thread (the one
// locked by this package's init), before any windows are created.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop: failed to initialize glfw: %w", err)
	}
	glfw.SetMonitorCallback(TheApp.MonitorChange)
	TheApp.GetScreens()
	system.TheApp = TheApp
	return nil
}

func (a *App) Platform() system.Platforms {
	switch runtime.GOOS {
	case "darwin":
		return system.MacOS
	case "windows":
		return system.Windows
	default:
		return system.Linux
	}
}

// WindowForHandle returns the window registered for the given native
// handle, or nil if there is none.
func (a *App) WindowForHandle(glw *glfw.Window) *Window {
	a.Mu.Lock()
	defer a.Mu.Unlock()
	return a.Handles[glw]
}

func (a *App) NewWindow(opts *system.NewWindowOptions) (system.Window, error) {
	if opts == nil {
		opts = &system.NewWindowOptions{}
	}
	opts.Fixup()

	var glw *glfw.Window
	err := a.Inv.DoErr(func() error {
		var err error
		glw, err = newGlfwWindow(opts, a.Screen(0))
		return err
	})
	if err != nil {
		return nil, err
	}

	w := &Window{Glw: glw}
	w.App = a
	w.Nm = opts.GetTitle()
	w.Titl = opts.GetTitle()
	w.Deco = opts.Decorated
	w.Stat = opts.StartState()

	a.Mu.Lock()
	a.Handles[glw] = w
	a.Mu.Unlock()
	a.AddWindow(w)

	glw.SetPosCallback(w.Moved)
	glw.SetSizeCallback(w.Resized)
	glw.SetCloseCallback(w.OnCloseReq)
	glw.SetFocusCallback(w.OnFocus)
	glw.SetIconifyCallback(w.Iconify)
	glw.SetMaximizeCallback(w.Maximize)
	glw.SetDropCallback(w.Dropped)

	a.Inv.Do(func() {
		glw.Show()
		w.updateGeom()
	})

	logx.PrintDebug("desktop: created window", "title", opts.GetTitle())
	return w, nil
}

// newGlfwWindow makes a new glfw window for the given options.
// It must run on the main thread.
func newGlfwWindow(opts *system.NewWindowOptions, sc *system.Screen) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False) // needed to position
	glfw.WindowHint(glfw.Focused, glfw.True)
	if opts.Decorated {
		glfw.WindowHint(glfw.Decorated, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.False)
	}
	if opts.Maximized {
		glfw.WindowHint(glfw.Maximized, glfw.True)
	}

	var mon *glfw.Monitor
	if opts.Fullscreen {
		mon = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.GetTitle(), mon, nil)
	if err != nil {
		return win, err
	}
	if !opts.Fullscreen {
		win.SetPos(opts.Pos.X, opts.Pos.Y)
	}
	win.MakeContextCurrent()
	return win, nil
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
	a.Inv.Do(glfw.Terminate)
}
